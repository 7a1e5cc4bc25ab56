package flash

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog/pkg/helpers"
)

const idCookie = "flash_id"

// RedisStore keeps messages in a redis list keyed by a random per-browser id cookie.
type RedisStore struct {
	RDB     *redis.Client
	Cookies *helpers.Manager
	Logger  *logrus.Logger
}

func NewRedisStore(rdb *redis.Client, cookies *helpers.Manager, logger *logrus.Logger) *RedisStore {
	return &RedisStore{RDB: rdb, Cookies: cookies, Logger: logger}
}

func flashKey(id string) string {
	return "flash:" + id
}

// id returns the browser's flash id, or "" when it has none and create is false.
func (s *RedisStore) id(c *gin.Context, create bool) string {
	if v := c.GetString(idCookie); v != "" {
		return v
	}
	if v, err := c.Cookie(idCookie); err == nil {
		if _, perr := uuid.Parse(v); perr == nil {
			c.Set(idCookie, v)
			return v
		}
	}
	if !create {
		return ""
	}
	v := uuid.NewString()
	c.Set(idCookie, v)
	s.Cookies.Set(c, idCookie, v, time.Now().Add(TTL))
	return v
}

func (s *RedisStore) Add(c *gin.Context, msg string) {
	key := flashKey(s.id(c, true))
	ctx := c.Request.Context()
	pipe := s.RDB.Pipeline()
	pipe.RPush(ctx, key, msg)
	pipe.Expire(ctx, key, TTL)
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

func (s *RedisStore) Pop(c *gin.Context) []string {
	id := s.id(c, false)
	if id == "" {
		return nil
	}
	key := flashKey(id)
	ctx := c.Request.Context()
	pipe := s.RDB.TxPipeline()
	lr := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
		}
		return nil
	}
	msgs := lr.Val()
	if len(msgs) == 0 {
		return nil
	}
	return msgs
}
