package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return NewRedisCacheWithClient(client, 15*time.Minute), server
}

func TestRedisCache_SnapshotRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	snapshot := &domain.ProfileSnapshot{
		BusinessName:  "Ótica Central",
		AverageRating: 4.6,
		TotalReviews:  60,
		SyncedAt:      time.Date(2024, 6, 15, 3, 0, 0, 0, time.UTC),
	}

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)

	cache.SetSnapshot(ctx, "BIZ001", snapshot)

	cached, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.True(t, ok)
	assert.Equal(t, "Ótica Central", cached.BusinessName)
	assert.Equal(t, 4.6, cached.AverageRating)
	assert.Equal(t, snapshot.SyncedAt, cached.SyncedAt)

	// Cada negócio tem a sua chave
	_, ok = cache.GetSnapshot(ctx, "BIZ002")
	assert.False(t, ok)
}

func TestRedisCache_ScoreRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	breakdown := &domain.ScoreBreakdown{
		OverallScore: 72,
		Status:       domain.ScoreStatusGood,
		Sections: map[string]domain.ScoreSection{
			domain.SectionReviews: {Score: 8, MaxScore: 10, Weight: 20},
		},
	}

	cache.SetScore(ctx, "BIZ001", breakdown)

	cached, ok := cache.GetScore(ctx, "BIZ001")
	assert.True(t, ok)
	assert.Equal(t, 72, cached.OverallScore)
	assert.Equal(t, domain.ScoreStatusGood, cached.Status)
	assert.Equal(t, 8.0, cached.Sections[domain.SectionReviews].Score)
}

func TestRedisCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.SetSnapshot(ctx, "BIZ001", &domain.ProfileSnapshot{BusinessName: "Ótica Central"})
	cache.SetScore(ctx, "BIZ001", &domain.ScoreBreakdown{OverallScore: 50})

	cache.Invalidate(ctx, "BIZ001")

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)
	_, ok = cache.GetScore(ctx, "BIZ001")
	assert.False(t, ok)
}

func TestRedisCache_EntradaExpiraComTTL(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	cache.SetSnapshot(ctx, "BIZ001", &domain.ProfileSnapshot{BusinessName: "Ótica Central"})

	server.FastForward(16 * time.Minute)

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)
}

func TestRedisCache_EntradaCorrompidaViraMiss(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	// Uma entrada ilegível nunca vira erro para o chamador
	assert.NoError(t, server.Set("profile:snapshot:BIZ001", "{corrompido"))

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)
}

func TestRedisCache_ServidorForaDoArNaoPropagaErro(t *testing.T) {
	cache, server := newTestCache(t)
	ctx := context.Background()

	server.Close()

	cache.SetSnapshot(ctx, "BIZ001", &domain.ProfileSnapshot{BusinessName: "Ótica Central"})

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)
}

func TestNoopCache(t *testing.T) {
	cache := NoopCache{}
	ctx := context.Background()

	cache.SetSnapshot(ctx, "BIZ001", &domain.ProfileSnapshot{})
	cache.SetScore(ctx, "BIZ001", &domain.ScoreBreakdown{})

	_, ok := cache.GetSnapshot(ctx, "BIZ001")
	assert.False(t, ok)
	_, ok = cache.GetScore(ctx, "BIZ001")
	assert.False(t, ok)
}
