package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const customerKeyPrefix = "stripe:customer:"

// cachedCustomerDirectory keeps successful customer lookups in redis.
// Cache failures degrade to a direct lookup.
type cachedCustomerDirectory struct {
	next   service.CustomerDirectory
	rdb    redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedCustomerDirectory wraps next with a read-through redis cache.
func NewCachedCustomerDirectory(next service.CustomerDirectory, rdb redis.Cmdable, ttl time.Duration, logger *slog.Logger) service.CustomerDirectory {
	return &cachedCustomerDirectory{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func (d *cachedCustomerDirectory) RetrieveCustomer(ctx context.Context, customerID string) (*service.PaymentCustomer, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	key := customerKeyPrefix + customerID

	cached, err := d.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var customer service.PaymentCustomer
		if jsonErr := json.Unmarshal(cached, &customer); jsonErr == nil {
			return &customer, nil
		}
		logger.WarnContext(ctx, "Dropping undecodable cached customer", slog.String("customer_id", customerID))
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(ctx, "Customer cache read failed", slog.Any("error", err))
	}

	customer, err := d.next.RetrieveCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(customer); jsonErr == nil {
		if setErr := d.rdb.Set(ctx, key, encoded, d.ttl).Err(); setErr != nil {
			logger.WarnContext(ctx, "Customer cache write failed", slog.Any("error", setErr))
		}
	}

	return customer, nil
}
