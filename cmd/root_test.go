package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-redis/redis"
	"github.com/mylxsw/redis-compat/api"
	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/mylxsw/redis-compat/core"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const stats = "# Commandstats\r\n" +
	"cmdstat_get:calls=21,usec=175,usec_per_call=8.33\r\n" +
	"cmdstat_lcs:calls=2,usec=20,usec_per_call=10.00\r\n"

type fakeClient struct {
	pingErr error
	closed  bool
}

func (f *fakeClient) Ping() *redis.StatusCmd {
	return redis.NewStatusResult("PONG", f.pingErr)
}

func (f *fakeClient) Process(cmd redis.Cmder) error {
	return nil
}

func (f *fakeClient) Do(args ...interface{}) *redis.Cmd {
	return redis.NewCmdResult(nil, nil)
}

func (f *fakeClient) Info(section ...string) *redis.StringCmd {
	return redis.NewStringResult(stats, nil)
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func run(t *testing.T, client *fakeClient, stdin string, args ...string) (string, string, error) {
	t.Helper()

	a := &app{
		v:       viper.New(),
		version: "v1.0.0",
		newClient: func(conf config.Config, outputChan chan core.OutputMessage) api.RedisClient {
			return client
		},
	}

	var stdout, stderr bytes.Buffer
	root := newRootCommand(a)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnnotateCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "annotate", "-o", "json", "get", "nope")
	assert.Nil(t, err)

	var annotations []catalog.Annotation
	assert.Nil(t, json.Unmarshal([]byte(out), &annotations))
	assert.Equal(t, []catalog.Annotation{
		{Name: "get", MinVersion: "1.0.0", CompatDetected: catalog.Supported},
		{Name: "nope", MinVersion: catalog.Unsupported, CompatDetected: catalog.Unsupported},
	}, annotations)

	_, _, err = run(t, nil, "", "annotate")
	assert.NotNil(t, err)
}

func TestSinceCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "since", "2.8.9")
	assert.Nil(t, err)
	assert.Contains(t, out, "LATENCY\n")
	assert.NotContains(t, out, "XADD\n")

	out, _, err = run(t, nil, "", "since", "2.8.9", "--comparator", "semantic")
	assert.Nil(t, err)
	assert.NotContains(t, out, "LATENCY\n")
	assert.Contains(t, out, "PFADD\n")
}

func TestVersionsCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "versions", "--sorted", "--comparator", "semantic")
	assert.Nil(t, err)

	versions := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, catalog.SortVersions(catalog.DistinctVersions(), catalog.SemanticComparator), versions)
	assert.Equal(t, "1.0.0", versions[0])
	assert.Equal(t, "7.0.0", versions[len(versions)-1])
}

func TestUsageCommandFromServer(t *testing.T) {
	client := &fakeClient{}

	out, _, err := run(t, client, "", "usage", "-o", "yaml")
	assert.Nil(t, err)
	assert.True(t, client.closed)
	assert.Contains(t, out, "name: GET")
	assert.Contains(t, out, "name: LCS")
	assert.Contains(t, out, "compat_detected: Unsupported")
}

func TestUsageCommandUnreachable(t *testing.T) {
	client := &fakeClient{pingErr: errors.New("connection refused")}

	_, stderr, err := run(t, client, "", "usage")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:6379")
	assert.Contains(t, stderr, "server is unreachable")
}

func TestUsageCommandFromFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "stats.txt")
	assert.Nil(t, os.WriteFile(file, []byte(stats), 0644))

	out, _, err := run(t, nil, "", "usage", "--stats-file", file)
	assert.Nil(t, err)
	assert.Contains(t, out, "1/2 commands supported")

	out, _, err = run(t, nil, stats, "usage", "-f", "-")
	assert.Nil(t, err)
	assert.Contains(t, out, "1/2 commands supported")

	_, _, err = run(t, nil, "", "usage", "-f", filepath.Join(t.TempDir(), "missing"))
	assert.NotNil(t, err)
}

func TestShowAndSearchCommands(t *testing.T) {
	out, _, err := run(t, nil, "", "show", "client", "list")
	assert.Nil(t, err)
	assert.Contains(t, out, "CLIENT LIST")

	_, _, err = run(t, nil, "", "show", "nope")
	assert.NotNil(t, err)

	out, _, err = run(t, nil, "", "search", "cluster *")
	assert.Nil(t, err)
	assert.Contains(t, out, "CLUSTER SHARDS")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := run(t, nil, "", "versions", "--comparator", "numeric")
	assert.NotNil(t, err)

	_, _, err = run(t, nil, "", "versions", "-o", "xml")
	assert.NotNil(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, nil, "", "version")
	assert.Nil(t, err)
	assert.Equal(t, "Version: v1.0.0\nGitCommit: \n", out)
}
