// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/locallibrary/internal/platform/constants"
)

// RedisStore implements [Store] with one Redis list per session.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed flash store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

/*
Push appends a flash entry to the session list.

Parameters:
  - context: context.Context
  - sessionID: string
  - flash: Flash
  - ttl: time.Duration (applied to the whole list)

Returns:
  - error: Execution errors
*/
func (store *RedisStore) Push(context context.Context, sessionID string, flash Flash, ttl time.Duration) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("redis_flash_encode_failed: %w", err)
	}

	key := constants.RedisPrefixFlash + sessionID

	// Append and refresh expiry atomically
	pipe := store.client.TxPipeline()
	pipe.RPush(context, key, payload)
	pipe.Expire(context, key, ttl)

	if _, err := pipe.Exec(context); err != nil {
		return fmt.Errorf("redis_flash_push_failed: %w", err)
	}
	return nil
}

/*
Pop reads and deletes every flash entry of a session.

Description: LRANGE and DEL run in one MULTI block, so a flash is shown at most once.
*/
func (store *RedisStore) Pop(context context.Context, sessionID string) ([]Flash, error) {
	key := constants.RedisPrefixFlash + sessionID

	pipe := store.client.TxPipeline()
	rangeCmd := pipe.LRange(context, key, 0, -1)
	pipe.Del(context, key)

	if _, err := pipe.Exec(context); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis_flash_pop_failed: %w", err)
	}

	raw, err := rangeCmd.Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis_flash_pop_failed: %w", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var flash Flash
		if err := json.Unmarshal([]byte(item), &flash); err != nil {
			continue
		}
		flashes = append(flashes, flash)
	}
	return flashes, nil
}
