package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Cache é a camada read-through sobre as leituras de snapshot e score. O
// banco continua sendo a verdade durável; um miss ou uma falha de cache nunca
// é erro para o chamador.
type Cache interface {
	GetSnapshot(ctx context.Context, businessID string) (*domain.ProfileSnapshot, bool)
	SetSnapshot(ctx context.Context, businessID string, snapshot *domain.ProfileSnapshot)
	GetScore(ctx context.Context, businessID string) (*domain.ScoreBreakdown, bool)
	SetScore(ctx context.Context, businessID string, breakdown *domain.ScoreBreakdown)
	Invalidate(ctx context.Context, businessID string)
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.Cache) Cache {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	return &redisCache{
		client: client,
		ttl:    cfg.TTL,
	}
}

// NewRedisCacheWithClient permite injetar um client já construído (testes)
func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{client: client, ttl: ttl}
}

func snapshotKey(businessID string) string {
	return fmt.Sprintf("profile:snapshot:%s", businessID)
}

func scoreKey(businessID string) string {
	return fmt.Sprintf("profile:score:%s", businessID)
}

func (c *redisCache) GetSnapshot(ctx context.Context, businessID string) (*domain.ProfileSnapshot, bool) {
	var snapshot domain.ProfileSnapshot
	if !c.get(ctx, snapshotKey(businessID), &snapshot) {
		return nil, false
	}
	return &snapshot, true
}

func (c *redisCache) SetSnapshot(ctx context.Context, businessID string, snapshot *domain.ProfileSnapshot) {
	c.set(ctx, snapshotKey(businessID), snapshot)
}

func (c *redisCache) GetScore(ctx context.Context, businessID string) (*domain.ScoreBreakdown, bool) {
	var breakdown domain.ScoreBreakdown
	if !c.get(ctx, scoreKey(businessID), &breakdown) {
		return nil, false
	}
	return &breakdown, true
}

func (c *redisCache) SetScore(ctx context.Context, businessID string, breakdown *domain.ScoreBreakdown) {
	c.set(ctx, scoreKey(businessID), breakdown)
}

func (c *redisCache) Invalidate(ctx context.Context, businessID string) {
	if err := c.client.Del(ctx, snapshotKey(businessID), scoreKey(businessID)).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Warn("cache: failed to invalidate keys")
	}
}

func (c *redisCache) get(ctx context.Context, key string, out any) bool {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithFields(logrus.Fields{
				"key":   key,
				"error": err.Error(),
			}).Warn("cache: read failed")
		}
		return false
	}

	if err := json.Unmarshal(payload, out); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("cache: corrupted entry, ignoring")
		return false
	}

	return true
}

func (c *redisCache) set(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("cache: failed to serialize entry")
		return
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   key,
			"error": err.Error(),
		}).Warn("cache: write failed")
	}
}

// NoopCache é usado quando o cache está desabilitado na configuração
type NoopCache struct{}

func (NoopCache) GetSnapshot(context.Context, string) (*domain.ProfileSnapshot, bool) {
	return nil, false
}

func (NoopCache) SetSnapshot(context.Context, string, *domain.ProfileSnapshot) {}

func (NoopCache) GetScore(context.Context, string) (*domain.ScoreBreakdown, bool) {
	return nil, false
}

func (NoopCache) SetScore(context.Context, string, *domain.ScoreBreakdown) {}

func (NoopCache) Invalidate(context.Context, string) {}
