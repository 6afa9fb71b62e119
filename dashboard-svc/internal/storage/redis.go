package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"review-insights/dashboard-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is not in Redis.
var ErrCacheMiss = errors.New("cache miss")

type RedisCache struct {
	Client    *redis.Client
	RecordTTL time.Duration
	ViewTTL   time.Duration
}

func NewRedisCache(client *redis.Client, recordTTL, viewTTL time.Duration) *RedisCache {
	return &RedisCache{Client: client, RecordTTL: recordTTL, ViewTTL: viewTTL}
}

func (c *RedisCache) RecordKey(id int) string {
	return "record:" + strconv.Itoa(id)
}

func (c *RedisCache) ViewKey(viewID string) string {
	return "view:" + viewID
}

// cachedRecord keeps the decoded layout next to the record, since the
// canonical JSON alone no longer tells which layout it came from.
type cachedRecord struct {
	Shape  domain.Shape            `json:"shape"`
	Record domain.RestaurantRecord `json:"record"`
}

func (c *RedisCache) GetRecord(ctx context.Context, id int) (*domain.RestaurantRecord, error) {
	raw, err := c.Client.Get(ctx, c.RecordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	var cached cachedRecord
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}
	rec := cached.Record
	rec.Shape = cached.Shape
	return &rec, nil
}

// SetRecord stores rec under the id it was requested with. Dish payloads
// carry no id of their own.
func (c *RedisCache) SetRecord(ctx context.Context, id int, rec *domain.RestaurantRecord) error {
	payload, err := json.Marshal(cachedRecord{Shape: rec.Shape, Record: *rec})
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.RecordKey(id), payload, c.RecordTTL).Err()
}

func (c *RedisCache) DeleteRecord(ctx context.Context, id int) error {
	return c.Client.Del(ctx, c.RecordKey(id)).Err()
}

func (c *RedisCache) SaveView(ctx context.Context, view *domain.PageView) error {
	payload, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, c.ViewKey(view.ID), payload, c.ViewTTL).Err()
}

func (c *RedisCache) LoadView(ctx context.Context, viewID string) (*domain.PageView, error) {
	raw, err := c.Client.Get(ctx, c.ViewKey(viewID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrViewNotFound
	}
	if err != nil {
		return nil, err
	}
	var view domain.PageView
	if err := json.Unmarshal(raw, &view); err != nil {
		return nil, err
	}
	return &view, nil
}
