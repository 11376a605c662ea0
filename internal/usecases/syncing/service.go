package syncing

import (
	"context"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/cache"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/internal/usecases/scoring"
	"github.com/vfg2006/profile-health-api/pkg/metrics"
)

var (
	ErrBusinessNotFound  = pkgerrors.New("negócio não encontrado")
	ErrBusinessNotLinked = pkgerrors.New("negócio sem conta conectada")
	ErrSnapshotNotFound  = pkgerrors.New("snapshot ainda não sincronizado")
)

// Aggregator é a dependência do sync sobre o integrador da plataforma
type Aggregator interface {
	FetchAll(ctx context.Context, accountID string, location domain.LocationReference, placeID *string) (*gbpdomain.FetchResults, error)
}

// Syncer é a porta de entrada do sync consumida pela camada HTTP e pelo
// agendador noturno
type Syncer interface {
	SyncBusiness(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error)
	GetSnapshot(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error)
	GetScore(ctx context.Context, businessID string) (*domain.ScoreBreakdown, error)
}

type Service struct {
	businesses repository.BusinessRepository
	snapshots  repository.SnapshotRepository
	scores     repository.ScoreRepository
	aggregator Aggregator
	scorer     scoring.Scorer
	cache      cache.Cache
	now        func() time.Time
}

func NewService(
	businesses repository.BusinessRepository,
	snapshots repository.SnapshotRepository,
	scores repository.ScoreRepository,
	aggregator Aggregator,
	scorer scoring.Scorer,
	profileCache cache.Cache,
) *Service {
	return &Service{
		businesses: businesses,
		snapshots:  snapshots,
		scores:     scores,
		aggregator: aggregator,
		scorer:     scorer,
		cache:      profileCache,
		now:        time.Now,
	}
}

// SyncBusiness executa um sync completo sob demanda: agrega os recursos
// remotos, normaliza, persiste o snapshot e recalcula o score. O snapshot é
// a verdade durável; falha ao persistí-lo é falha do sync mesmo com o
// snapshot já computado. O score é visão derivada e sua persistência é
// best-effort.
func (s *Service) SyncBusiness(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error) {
	started := s.now()

	business, err := s.businesses.GetByID(ctx, businessID)
	if err != nil {
		metrics.SyncTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, pkgerrors.Wrap(err, "erro ao buscar o negócio")
	}
	if business == nil {
		metrics.SyncTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, ErrBusinessNotFound
	}
	if business.AccountID == nil || !business.Location.IsLinked() {
		metrics.SyncTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, ErrBusinessNotLinked
	}

	results, err := s.aggregator.FetchAll(ctx, *business.AccountID, business.Location, business.PlaceID)
	if err != nil {
		if pkgerrors.Is(err, gbpclient.ErrReauthorizationRequired) {
			metrics.SyncTotal.WithLabelValues(metrics.ResultReauthorizationError).Inc()
		} else {
			metrics.SyncTotal.WithLabelValues(metrics.ResultError).Inc()
		}
		return nil, err
	}

	for kind := range results.Failures {
		metrics.SyncResourceFailures.WithLabelValues(string(kind)).Inc()
	}

	snapshot := Normalize(results, s.now())

	if err := s.snapshots.Save(ctx, businessID, snapshot); err != nil {
		metrics.SyncTotal.WithLabelValues(metrics.ResultPersistenceFailure).Inc()
		return nil, pkgerrors.Wrap(err, "erro ao persistir o snapshot")
	}

	breakdown := s.scorer.Score(snapshot, s.now())
	if err := s.scores.Save(ctx, businessID, breakdown); err != nil {
		// Score é recomputável a partir do snapshot persistido
		logrus.WithFields(logrus.Fields{
			"business_id": businessID,
			"error":       err.Error(),
		}).Warn("sync: failed to persist score breakdown")
	}
	metrics.ScoreComputed.WithLabelValues(string(breakdown.Status)).Inc()

	s.cache.SetSnapshot(ctx, businessID, snapshot)
	s.cache.SetScore(ctx, businessID, breakdown)

	metrics.SyncTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	metrics.SyncDuration.Observe(s.now().Sub(started).Seconds())

	logrus.WithFields(logrus.Fields{
		"business_id":   businessID,
		"failures":      len(results.Failures),
		"overall_score": breakdown.OverallScore,
		"score_status":  string(breakdown.Status),
		"total_reviews": snapshot.TotalReviews,
		"total_photos":  snapshot.TotalPhotos,
		"sync_duration": time.Since(started).String(),
	}).Info("sync: business synchronized")

	return snapshot, nil
}

// GetSnapshot lê o snapshot mais recente, passando pelo cache
func (s *Service) GetSnapshot(ctx context.Context, businessID string) (*domain.ProfileSnapshot, error) {
	if snapshot, ok := s.cache.GetSnapshot(ctx, businessID); ok {
		return snapshot, nil
	}

	snapshot, err := s.snapshots.Get(ctx, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar o snapshot")
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	s.cache.SetSnapshot(ctx, businessID, snapshot)
	return snapshot, nil
}

// GetScore lê o breakdown persistido; se ausente mas houver snapshot, o
// score é recomputado na hora, já que é função pura do snapshot
func (s *Service) GetScore(ctx context.Context, businessID string) (*domain.ScoreBreakdown, error) {
	if breakdown, ok := s.cache.GetScore(ctx, businessID); ok {
		return breakdown, nil
	}

	breakdown, err := s.scores.Get(ctx, businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar o score")
	}

	if breakdown == nil {
		snapshot, err := s.snapshots.Get(ctx, businessID)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao buscar o snapshot")
		}
		if snapshot == nil {
			return nil, ErrSnapshotNotFound
		}

		breakdown = s.scorer.Score(snapshot, s.now())
		if err := s.scores.Save(ctx, businessID, breakdown); err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Warn("sync: failed to persist recomputed score")
		}
	}

	s.cache.SetScore(ctx, businessID, breakdown)
	return breakdown, nil
}
