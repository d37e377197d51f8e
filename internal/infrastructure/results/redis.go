package results

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ParseRedisURL turns redis://[:password@]host:port[/db] into client options.
// rediss:// enables TLS.
func ParseRedisURL(raw string) (*redis.Options, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "redis" && u.Scheme != "rediss" {
		return nil, fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("redis url %q has no host", raw)
	}
	db := 0
	if p := strings.TrimPrefix(u.Path, "/"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("redis db %q: %w", p, err)
		}
		db = n
	}
	pass, _ := u.User.Password()
	opts := &redis.Options{Addr: u.Host, Password: pass, DB: db}
	if u.Scheme == "rediss" {
		opts.TLSConfig = &tls.Config{ServerName: u.Hostname(), MinVersion: tls.VersionTLS12}
	}
	return opts, nil
}

// Connect opens a client for rawURL and pings it.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := ParseRedisURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Open returns a RedisStore when rawURL is set and a MemoryStore otherwise.
func Open(ctx context.Context, rawURL, prefix string, keep int) (Store, error) {
	if rawURL == "" {
		return NewMemoryStore(keep), nil
	}
	client, err := Connect(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(client, prefix, keep), nil
}

// RedisStore keeps each result as a JSON string, a capped list of recent IDs
// and a sorted set of wins scored by duration.
type RedisStore struct {
	client *redis.Client
	prefix string
	keep   int
}

// NewRedisStore wraps client. Keys are namespaced by prefix.
// keep <= 0 leaves the lists unbounded.
func NewRedisStore(client *redis.Client, prefix string, keep int) *RedisStore {
	if prefix == "" {
		prefix = "results"
	}
	return &RedisStore{client: client, prefix: prefix, keep: keep}
}

func (s *RedisStore) resultKey(id string) string { return s.prefix + ":result:" + id }
func (s *RedisStore) recentKey() string          { return s.prefix + ":recent" }
func (s *RedisStore) fastestKey() string         { return s.prefix + ":fastest" }

func (s *RedisStore) Save(ctx context.Context, r Result) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.resultKey(r.ID), data, 0)
		pipe.LPush(ctx, s.recentKey(), r.ID)
		if s.keep > 0 {
			pipe.LTrim(ctx, s.recentKey(), 0, int64(s.keep-1))
		}
		if r.Won() {
			pipe.ZAdd(ctx, s.fastestKey(), redis.Z{
				Score:  float64(r.Duration),
				Member: r.ID,
			})
			if s.keep > 0 {
				pipe.ZRemRangeByRank(ctx, s.fastestKey(), int64(s.keep), -1)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save result %s: %w", r.ID, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Result, error) {
	data, err := s.client.Get(ctx, s.resultKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Result{}, ErrNotFound
	}
	if err != nil {
		return Result{}, fmt.Errorf("get result %s: %w", id, err)
	}
	var r Result
	if err := json.Unmarshal(data, &r); err != nil {
		return Result{}, fmt.Errorf("decode result %s: %w", id, err)
	}
	return r, nil
}

func (s *RedisStore) Fastest(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return []Result{}, nil
	}
	ids, err := s.client.ZRange(ctx, s.fastestKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("fastest results: %w", err)
	}
	return s.load(ctx, ids)
}

func (s *RedisStore) Recent(ctx context.Context, n int) ([]Result, error) {
	if n <= 0 {
		return []Result{}, nil
	}
	ids, err := s.client.LRange(ctx, s.recentKey(), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("recent results: %w", err)
	}
	return s.load(ctx, ids)
}

// load fetches ids in order. IDs whose result key is gone are skipped.
func (s *RedisStore) load(ctx context.Context, ids []string) ([]Result, error) {
	out := make([]Result, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.resultKey(id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	for i, v := range vals {
		str, ok := v.(string)
		if !ok {
			continue
		}
		var r Result
		if err := json.Unmarshal([]byte(str), &r); err != nil {
			return nil, fmt.Errorf("decode result %s: %w", ids[i], err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
