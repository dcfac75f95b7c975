package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/mylxsw/redis-compat/catalog"
	"github.com/mylxsw/redis-compat/config"
	"github.com/mylxsw/redis-compat/core"

	"github.com/gdamore/tcell"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// RedisClient is the subset of the go-redis client used by redis-compat
type RedisClient interface {
	Ping() *redis.StatusCmd
	Process(cmd redis.Cmder) error
	Do(args ...interface{}) *redis.Cmd
	Info(section ...string) *redis.StringCmd
	Close() error
}

// NewRedisClient create a new redis client which wraps single or cluster client
func NewRedisClient(conf config.Config, outputChan chan core.OutputMessage) RedisClient {
	if conf.Cluster {
		options := &redis.ClusterOptions{
			Addrs:    []string{conf.Addr()},
			Password: conf.Password,
		}

		return redis.NewClusterClient(options)
	}

	options := &redis.Options{
		Addr:         conf.Addr(),
		DB:           conf.DB,
		Password:     conf.Password,
		WriteTimeout: 3 * time.Second,
		ReadTimeout:  2 * time.Second,
	}

	client := redis.NewClient(options)
	if conf.Debug && outputChan != nil {
		client.WrapProcess(func(oldProcess func(cmd redis.Cmder) error) func(cmd redis.Cmder) error {
			return func(cmd redis.Cmder) error {

				outputChan <- core.OutputMessage{Color: tcell.ColorOrange, Message: fmt.Sprintf("redis: <%s>", cmd)}
				err := oldProcess(cmd)

				return err
			}
		})
	}

	return client
}

// RedisExecute runs a raw command line such as "client list type normal"
func RedisExecute(client RedisClient, command string) (interface{}, error) {
	stringArgs := strings.Fields(command)
	if len(stringArgs) == 0 {
		return nil, errors.New("empty command")
	}

	var args = make([]interface{}, len(stringArgs))
	for i, s := range stringArgs {
		args[i] = s
	}

	return client.Do(args...).Result()
}

// ParseInfo splits an INFO reply into its key/value pairs
func ParseInfo(info string) map[string]string {
	var kvpairs = make(map[string]string)
	for _, kv := range strings.Split(info, "\n") {
		kv = strings.TrimSpace(kv)
		if strings.HasPrefix(kv, "#") || kv == "" {
			continue
		}

		pair := strings.SplitN(kv, ":", 2)
		if len(pair) != 2 {
			continue
		}

		kvpairs[pair[0]] = pair[1]
	}

	return kvpairs
}

// RedisServerInfo returns a short summary of the server for the help panel
func RedisServerInfo(conf config.Config, client RedisClient) (string, error) {
	res, err := client.Info().Result()
	if err != nil {
		return "", errors.Wrap(err, "query server info")
	}

	kvpairs := ParseInfo(res)

	keySpace := "-"
	if ks, ok := kvpairs[fmt.Sprintf("db%d", conf.DB)]; ok {
		keySpace = ks
	}
	return fmt.Sprintf(" RedisVersion: %s    Memory: %s    Server: %s/%d\n KeySpace: %s", kvpairs["redis_version"], kvpairs["used_memory_human"], conf.Addr(), conf.DB, keySpace), nil
}

// CommandStats returns the raw "INFO commandstats" report
func CommandStats(client RedisClient) (string, error) {
	res, err := client.Info("commandstats").Result()
	if err != nil {
		return "", errors.Wrap(err, "query commandstats")
	}

	return res, nil
}

// ExecutedCommands lists the distinct commands reported in a commandstats report,
// as catalog identifiers
func ExecutedCommands(stats string) []string {
	names := catalog.ParseExecutedCommandNames(stats)
	for i, n := range names {
		names[i] = catalog.NormalizeStatName(n)
	}

	return catalog.Unique(names)
}

// UsageReport annotates every command the server has executed since its stats were reset
func UsageReport(client RedisClient, cat *catalog.Catalog) ([]catalog.Annotation, error) {
	stats, err := CommandStats(client)
	if err != nil {
		return nil, err
	}

	return cat.AnnotateWithVersions(ExecutedCommands(stats)), nil
}
