package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	UnseenNotificationsKeyPrefix        = "notifications:unseen:%d"
	UnseenNotificationsVersionKeyPrefix = "notifications:unseen:%d:version"
)

const (
	UnseenNotificationsTTL = 30 * time.Second
)

// UnseenNotificationsKey caches whether a user has unseen notifications.
func UnseenNotificationsKey(userID uint) string {
	return fmt.Sprintf(UnseenNotificationsKeyPrefix, userID)
}

// UnseenNotificationsVersionKey counts invalidations of a user's unseen flag.
func UnseenNotificationsVersionKey(userID uint) string {
	return fmt.Sprintf(UnseenNotificationsVersionKeyPrefix, userID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// AsideGuarded tries Redis first; on a miss it calls fetch, which must populate
// dest, and stores dest with ttl only if versionKey did not change while fetch
// ran. Writers bump versionKey when they invalidate key, so a value computed
// before their write is never cached.
func AsideGuarded(ctx context.Context, key, versionKey string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		return nil
	}

	c := client
	if c == nil {
		return fetch()
	}

	version, verr := c.Get(ctx, versionKey).Int64()
	if verr != nil && !errors.Is(verr, redis.Nil) {
		return fetch()
	}

	if err := fetch(); err != nil {
		return err
	}

	b, err := json.Marshal(dest)
	if err != nil {
		return nil
	}
	// A bump after the check aborts EXEC with redis.TxFailedErr.
	_ = c.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key, b, ttl)
			return nil
		})
		return err
	}, versionKey)
	return nil
}

// InvalidateUnseen drops the cached unseen flag for userID and bumps its
// version so an in-flight HasNew read does not store a stale flag.
func InvalidateUnseen(ctx context.Context, userID uint) {
	c := client
	if c == nil {
		return
	}
	_, _ = c.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, UnseenNotificationsVersionKey(userID))
		p.Del(ctx, UnseenNotificationsKey(userID))
		return nil
	})
}
