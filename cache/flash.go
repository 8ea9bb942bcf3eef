// Package cache holds the Redis-backed transient state: one-shot flash
// messages keyed per browser, consumed on the next page render.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"harmonic/db"

	"github.com/redis/go-redis/v9"
)

// FlashLevel classifies a flash message for the view layer.
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash is a one-shot user-visible message.
type Flash struct {
	Level   FlashLevel `json:"level"`
	Message string     `json:"message"`
}

// Flashes older than this are dropped unread.
const flashTTL = 10 * time.Minute

// flashKey builds the Redis key for a browser's pending flashes.
func flashKey(browserID string) string {
	return fmt.Sprintf("flash:%s", browserID)
}

// PushFlash queues a message for the next render of the given browser.
func PushFlash(ctx context.Context, browserID string, level FlashLevel, message string) error {
	if db.RedisClient == nil {
		return fmt.Errorf("Redis client not initialized")
	}

	payload, err := json.Marshal(Flash{Level: level, Message: message})
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	key := flashKey(browserID)
	if err := db.RedisClient.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("failed to push flash: %w", err)
	}
	if err := db.RedisClient.Expire(ctx, key, flashTTL).Err(); err != nil {
		return fmt.Errorf("failed to set flash expiration: %w", err)
	}
	return nil
}

// PopFlashes returns and clears all pending messages for the browser.
func PopFlashes(ctx context.Context, browserID string) ([]Flash, error) {
	if db.RedisClient == nil {
		return nil, fmt.Errorf("Redis client not initialized")
	}

	key := flashKey(browserID)

	pipe := db.RedisClient.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to pop flashes: %w", err)
	}

	raw := rangeCmd.Val()
	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			return nil, fmt.Errorf("failed to unmarshal flash: %w", err)
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}
