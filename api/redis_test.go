package api_test

import (
	"testing"

	"github.com/go-redis/redis"
	"github.com/mylxsw/redis-compat/api"
	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	info     map[string]string
	infoErr  error
	doResult interface{}
	doArgs   []interface{}
}

func (f *fakeClient) Ping() *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

func (f *fakeClient) Process(cmd redis.Cmder) error {
	return nil
}

func (f *fakeClient) Do(args ...interface{}) *redis.Cmd {
	f.doArgs = args
	return redis.NewCmdResult(f.doResult, nil)
}

func (f *fakeClient) Info(section ...string) *redis.StringCmd {
	key := ""
	if len(section) > 0 {
		key = section[0]
	}

	return redis.NewStringResult(f.info[key], f.infoErr)
}

func (f *fakeClient) Close() error {
	return nil
}

const stats = "# Commandstats\r\n" +
	"cmdstat_get:calls=21,usec=175,usec_per_call=8.33\r\n" +
	"cmdstat_client|list:calls=1,usec=25,usec_per_call=25.00\r\n" +
	"cmdstat_lcs:calls=2,usec=20,usec_per_call=10.00\r\n" +
	"cmdstat_mycommand:calls=2,usec=20,usec_per_call=10.00\r\n"

func TestUsageReport(t *testing.T) {
	client := &fakeClient{info: map[string]string{"commandstats": stats}}

	report, err := api.UsageReport(client, catalog.Default())
	assert.Nil(t, err)
	assert.Equal(t, []catalog.Annotation{
		{Name: "GET", MinVersion: "1.0.0", CompatDetected: catalog.Supported},
		{Name: "CLIENT LIST", MinVersion: "2.4.0", CompatDetected: catalog.Supported},
		{Name: "LCS", MinVersion: "7.0.0", CompatDetected: catalog.Unsupported},
		{Name: "MYCOMMAND", MinVersion: catalog.Unsupported, CompatDetected: catalog.Unsupported},
	}, report)
}

func TestUsageReportError(t *testing.T) {
	cause := errors.New("connection refused")
	client := &fakeClient{infoErr: cause}

	_, err := api.UsageReport(client, catalog.Default())
	assert.NotNil(t, err)
	assert.Equal(t, cause, errors.Cause(err))
}

func TestExecutedCommandsDeduplicates(t *testing.T) {
	assert.Equal(t, []string{"GET", "CLIENT LIST", "LCS", "MYCOMMAND"}, api.ExecutedCommands(stats+stats))
	assert.Empty(t, api.ExecutedCommands(""))
}

func TestRedisServerInfo(t *testing.T) {
	client := &fakeClient{info: map[string]string{"": "# Server\r\nredis_version:7.2.4\r\n# Memory\r\nused_memory_human:1.05M\r\n# Keyspace\r\ndb0:keys=3,expires=0,avg_ttl=0\r\n"}}

	info, err := api.RedisServerInfo(config.Default(), client)
	assert.Nil(t, err)
	assert.Contains(t, info, "RedisVersion: 7.2.4")
	assert.Contains(t, info, "Memory: 1.05M")
	assert.Contains(t, info, "KeySpace: keys=3,expires=0,avg_ttl=0")
}

func TestRedisExecute(t *testing.T) {
	client := &fakeClient{doResult: "OK"}

	res, err := api.RedisExecute(client, "set  foo bar")
	assert.Nil(t, err)
	assert.Equal(t, "OK", res)
	assert.Equal(t, []interface{}{"set", "foo", "bar"}, client.doArgs)

	_, err = api.RedisExecute(client, "   ")
	assert.NotNil(t, err)
}
