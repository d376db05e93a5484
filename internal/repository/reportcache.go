package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/costmanager/backend/internal/models"
)

// ReportCache is the memoization layer over the cost store: at most
// one entry per (userid, year, month). Entries carry no TTL; the only
// way an entry dies is an explicit Invalidate from the write path (or
// Flush during a bulk wipe). A Get miss is (nil, nil), never an error.
type ReportCache interface {
	Get(ctx context.Context, userID int64, year, month int) (*models.Report, error)
	Put(ctx context.Context, report *models.Report) error
	Invalidate(ctx context.Context, userID int64, year, month int) error
	Flush(ctx context.Context) error
}

type RedisReportCache struct {
	client *redis.Client
}

// NewRedisReportCache wraps the Redis client. A nil client is allowed
// and turns every operation into a no-op miss, so the API keeps
// working without Redis.
func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func reportKey(userID int64, year, month int) string {
	return fmt.Sprintf("report:%d:%d:%d", userID, year, month)
}

func (c *RedisReportCache) Get(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, reportKey(userID, year, month)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report models.Report
	if err := json.Unmarshal(data, &report); err != nil {
		// A corrupt entry is treated as a miss; the next Put overwrites it.
		log.Printf("[CACHE] Dropping unreadable report entry %s: %v", reportKey(userID, year, month), err)
		return nil, nil
	}
	return &report, nil
}

func (c *RedisReportCache) Put(ctx context.Context, report *models.Report) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, reportKey(report.UserID, report.Year, report.Month), data, 0).Err()
}

// Invalidate deletes the entry for the bucket. Deleting an absent key
// is a no-op, so concurrent invalidations are idempotent.
func (c *RedisReportCache) Invalidate(ctx context.Context, userID int64, year, month int) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, reportKey(userID, year, month)).Err()
}

// Flush removes every cached report. Used by the bulk cost wipe,
// after which all cached breakdowns are stale by definition.
func (c *RedisReportCache) Flush(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, "report:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
