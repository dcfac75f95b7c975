package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mylxsw/redis-compat/config"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := config.Load(viper.New(), "")
	assert.Nil(t, err)
	assert.Equal(t, config.Default(), conf)
	assert.Equal(t, "127.0.0.1:6379", conf.Addr())
}

func TestLoadFileAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "redis-compat.yaml")
	assert.Nil(t, os.WriteFile(file, []byte("host: 10.0.0.1\nport: 6380\ncomparator: semantic\n"), 0644))

	t.Setenv("REDIS_COMPAT_PORT", "7000")

	conf, err := config.Load(viper.New(), file)
	assert.Nil(t, err)
	assert.Equal(t, "10.0.0.1", conf.Host)
	assert.Equal(t, 7000, conf.Port)
	assert.Equal(t, "semantic", conf.Comparator)
	assert.Equal(t, 1, conf.VersionComparator()("10.0.0", "2.0.0"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {
	conf := config.Default()
	assert.Nil(t, conf.Validate())

	conf.Comparator = "numeric"
	assert.NotNil(t, conf.Validate())

	conf = config.Default()
	conf.Output = "xml"
	assert.NotNil(t, conf.Validate())

	conf = config.Default()
	conf.Port = 0
	assert.NotNil(t, conf.Validate())
}
