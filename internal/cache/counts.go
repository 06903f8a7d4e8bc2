package cache

import (
	"Closetly/internal/service"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const countsKeyPrefix = "post_counts:"

// CountsCaching — read-through кеш счётчиков поста поверх CountsProvider.
// Значение в Redis: "likes|comments". Ошибки Redis не возвращаются наружу:
// при любой проблеме с кешем идём медленным путём в БД.
type CountsCaching struct {
	Next service.CountsProvider

	Redis  *redis.Client
	TTL    time.Duration
	Logger *zap.SugaredLogger
}

var _ service.CountsProvider = (*CountsCaching)(nil)

// Counts возвращает счётчики из кеша, при промахе — из БД с записью в кеш.
func (c *CountsCaching) Counts(ctx context.Context, postID string) (int64, int64, error) {
	key := countsKey(postID)

	val, err := c.Redis.Get(ctx, key).Result()
	switch {
	case err == redis.Nil:
		// промах, идём в БД
	case err != nil:
		c.Logger.Warnw("can't get post counts from redis", "post_id", postID, "error", err)
	default:
		likes, comments, perr := parseCountsVal(val)
		if perr == nil {
			return likes, comments, nil
		}
		c.Logger.Warnw("can't parse post counts cache value", "val", val, "error", perr)
	}

	likes, comments, err := c.Next.Counts(ctx, postID)
	if err != nil {
		return 0, 0, err
	}

	ttl := c.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	packed := strconv.FormatInt(likes, 10) + "|" + strconv.FormatInt(comments, 10)
	if err := c.Redis.Set(ctx, key, packed, ttl).Err(); err != nil {
		c.Logger.Warnw("can't store post counts in redis", "post_id", postID, "error", err)
	}
	return likes, comments, nil
}

// Invalidate сбрасывает ключ после лайка/комментария.
func (c *CountsCaching) Invalidate(ctx context.Context, postID string) {
	if err := c.Redis.Del(ctx, countsKey(postID)).Err(); err != nil {
		c.Logger.Warnw("can't invalidate post counts in redis", "post_id", postID, "error", err)
	}
}

var _ service.CountInvalidator = (*CountsCaching)(nil)

func countsKey(postID string) string {
	return countsKeyPrefix + postID
}

func parseCountsVal(val string) (int64, int64, error) {
	parts := strings.Split(val, "|")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected counts value %q", val)
	}
	likes, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	comments, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, err
	}
	return likes, comments, nil
}
