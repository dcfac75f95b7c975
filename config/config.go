package config

import (
	"fmt"
	"strings"

	"github.com/mylxsw/redis-compat/catalog"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Output formats of the non interactive commands
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// EnvPrefix is the prefix of the environment variables read by Load
const EnvPrefix = "REDIS_COMPAT"

type Config struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	Cluster    bool   `mapstructure:"cluster"`
	Debug      bool   `mapstructure:"debug"`
	Comparator string `mapstructure:"comparator"`
	Output     string `mapstructure:"output"`
}

// Default returns the configuration used when nothing is specified
func Default() Config {
	return Config{
		Host:       "127.0.0.1",
		Port:       6379,
		DB:         0,
		Comparator: catalog.ComparatorLexical,
		Output:     OutputTable,
	}
}

// SetDefaults registers the default values on v
func SetDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("host", def.Host)
	v.SetDefault("port", def.Port)
	v.SetDefault("password", def.Password)
	v.SetDefault("db", def.DB)
	v.SetDefault("cluster", def.Cluster)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("comparator", def.Comparator)
	v.SetDefault("output", def.Output)
}

// Load reads the configuration from v. When configFile is not empty it is read first,
// environment variables (REDIS_COMPAT_HOST, ...) and bound flags override it.
func Load(v *viper.Viper, configFile string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "unable to read configuration file %s", configFile)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, errors.Wrap(err, "decode configuration")
	}

	return conf, conf.Validate()
}

// Validate checks the option values
func (c Config) Validate() error {
	if _, err := catalog.ComparatorByName(c.Comparator); err != nil {
		return err
	}

	switch strings.ToLower(c.Output) {
	case OutputTable, OutputJSON, OutputYAML:
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}

	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}

	return nil
}

// Addr returns the host:port address of the server
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// VersionComparator returns the configured version policy
func (c Config) VersionComparator() catalog.Comparator {
	cmp, err := catalog.ComparatorByName(c.Comparator)
	if err != nil {
		return catalog.LexicalComparator
	}

	return cmp
}
