package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"eventhub/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const isolatedCacheTestRedisDB = 13

type countingDirectory struct {
	calls    int
	customer *service.PaymentCustomer
	err      error
}

func (d *countingDirectory) RetrieveCustomer(_ context.Context, _ string) (*service.PaymentCustomer, error) {
	d.calls++

	return d.customer, d.err
}

// newTestRedis connects to REDIS_ADDR (default localhost:6379) or skips.
func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: isolatedCacheTestRedisDB})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Skipping Redis-dependent test: no reachable Redis endpoint (%v)", err)
	}
	require.NoError(t, client.FlushDB(context.Background()).Err())

	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})

	return client
}

func TestCachedCustomerDirectory_ReadThrough(t *testing.T) {
	rdb := newTestRedis(t)
	next := &countingDirectory{customer: &service.PaymentCustomer{ID: "cus_1", Email: "partner@example.com"}}
	directory := NewCachedCustomerDirectory(next, rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	first, err := directory.RetrieveCustomer(context.Background(), "cus_1")
	require.NoError(t, err)
	second, err := directory.RetrieveCustomer(context.Background(), "cus_1")
	require.NoError(t, err)

	assert.Equal(t, 1, next.calls)
	assert.Equal(t, first, second)

	ttl, err := rdb.TTL(context.Background(), customerKeyPrefix+"cus_1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestCachedCustomerDirectory_ErrorsAreNotCached(t *testing.T) {
	rdb := newTestRedis(t)
	next := &countingDirectory{err: assert.AnError}
	directory := NewCachedCustomerDirectory(next, rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := directory.RetrieveCustomer(context.Background(), "cus_2")
	assert.ErrorIs(t, err, assert.AnError)
	_, err = directory.RetrieveCustomer(context.Background(), "cus_2")
	assert.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, 2, next.calls)
	exists, err := rdb.Exists(context.Background(), customerKeyPrefix+"cus_2").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)
}

func TestCachedCustomerDirectory_UnreachableRedisFallsThrough(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	next := &countingDirectory{customer: &service.PaymentCustomer{ID: "cus_3", Email: "x@example.com"}}
	directory := NewCachedCustomerDirectory(next, rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := directory.RetrieveCustomer(context.Background(), "cus_3")
	require.NoError(t, err)
	assert.Equal(t, "x@example.com", got.Email)
	assert.Equal(t, 1, next.calls)
}
