package syncing_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profile-health-api/infrastructure/cache"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	repomocks "github.com/vfg2006/profile-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/internal/usecases/scoring"
	"github.com/vfg2006/profile-health-api/internal/usecases/syncing"
	syncmocks "github.com/vfg2006/profile-health-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func linkedBusiness() *domain.Business {
	return &domain.Business{
		ID:        "BIZ001",
		Name:      "Ótica Central",
		Status:    domain.BusinessActive,
		AccountID: stringPtr("ACC001"),
		Location: domain.LocationReference{
			AccountID:  "1088",
			LocationID: "5577",
		},
	}
}

func TestService_SyncBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	mockScoreRepo := repomocks.NewMockScoreRepository(ctrl)
	mockAggregator := syncmocks.NewMockAggregator(ctrl)

	service := syncing.NewService(
		mockBusinessRepo,
		mockSnapshotRepo,
		mockScoreRepo,
		mockAggregator,
		scoring.NewEngine(),
		cache.NoopCache{},
	)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, snapshot *domain.ProfileSnapshot, err error)
	}{
		{
			name: "Sync completo persiste snapshot e score",
			setup: func() {
				results := gbpdomain.NewFetchResults()
				results.Location = &gbpdomain.Location{Title: "Ótica Central"}
				results.Reviews = []gbpdomain.Review{
					{ReviewID: "rev-1", StarRating: gbpdomain.StarRatingFive},
				}
				results.Rating = gbpdomain.ReconciledRating{
					Average: 5.0,
					Count:   1,
					Source:  gbpdomain.RatingSourceComputed,
				}

				mockBusinessRepo.EXPECT().
					GetByID(gomock.Any(), "BIZ001").
					Return(linkedBusiness(), nil)

				mockAggregator.EXPECT().
					FetchAll(gomock.Any(), "ACC001", gomock.Any(), gomock.Nil()).
					Return(results, nil)

				mockSnapshotRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(nil)

				mockScoreRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.ProfileSnapshot, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
				assert.Equal(t, "Ótica Central", snapshot.BusinessName)
				assert.Equal(t, 1, snapshot.TotalReviews)
				assert.False(t, snapshot.SyncedAt.IsZero())
			},
		},
		{
			name: "Falha parcial de recursos não aborta o sync",
			setup: func() {
				results := gbpdomain.NewFetchResults()
				results.Location = &gbpdomain.Location{Title: "Ótica Central"}
				results.MarkFailed(gbpdomain.ResourceReviews, "timeout")
				results.MarkFailed(gbpdomain.ResourceQuestions, "HTTP 500")

				mockBusinessRepo.EXPECT().
					GetByID(gomock.Any(), "BIZ001").
					Return(linkedBusiness(), nil)

				mockAggregator.EXPECT().
					FetchAll(gomock.Any(), "ACC001", gomock.Any(), gomock.Nil()).
					Return(results, nil)

				mockSnapshotRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(nil)

				mockScoreRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, snapshot *domain.ProfileSnapshot, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
				// Recursos falhos viram coleções vazias no snapshot
				assert.Empty(t, snapshot.Reviews)
				assert.Equal(t, 0, snapshot.TotalReviews)
			},
		},
		{
			name: "Falha ao persistir o snapshot é falha do sync",
			setup: func() {
				mockBusinessRepo.EXPECT().
					GetByID(gomock.Any(), "BIZ001").
					Return(linkedBusiness(), nil)

				mockAggregator.EXPECT().
					FetchAll(gomock.Any(), "ACC001", gomock.Any(), gomock.Nil()).
					Return(gbpdomain.NewFetchResults(), nil)

				mockSnapshotRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, snapshot *domain.ProfileSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, snapshot)
				assert.Contains(t, err.Error(), "erro ao persistir o snapshot")
			},
		},
		{
			name: "Falha ao persistir o score não é falha do sync",
			setup: func() {
				mockBusinessRepo.EXPECT().
					GetByID(gomock.Any(), "BIZ001").
					Return(linkedBusiness(), nil)

				mockAggregator.EXPECT().
					FetchAll(gomock.Any(), "ACC001", gomock.Any(), gomock.Nil()).
					Return(gbpdomain.NewFetchResults(), nil)

				mockSnapshotRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(nil)

				mockScoreRepo.EXPECT().
					Save(gomock.Any(), "BIZ001", gomock.Any()).
					Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, snapshot *domain.ProfileSnapshot, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, snapshot)
			},
		},
		{
			name: "Credencial revogada interrompe o sync com erro de reautorização",
			setup: func() {
				mockBusinessRepo.EXPECT().
					GetByID(gomock.Any(), "BIZ001").
					Return(linkedBusiness(), nil)

				mockAggregator.EXPECT().
					FetchAll(gomock.Any(), "ACC001", gomock.Any(), gomock.Nil()).
					Return(nil, errors.WithMessage(gbpclient.ErrReauthorizationRequired, "conta ACC001"))
			},
			validate: func(t *testing.T, snapshot *domain.ProfileSnapshot, err error) {
				assert.Error(t, err)
				assert.Nil(t, snapshot)
				assert.True(t, errors.Is(err, gbpclient.ErrReauthorizationRequired))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			snapshot, err := service.SyncBusiness(context.Background(), "BIZ001")
			tt.validate(t, snapshot, err)
		})
	}
}

func TestService_SyncBusiness_NegocioInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	mockScoreRepo := repomocks.NewMockScoreRepository(ctrl)
	mockAggregator := syncmocks.NewMockAggregator(ctrl)

	service := syncing.NewService(
		mockBusinessRepo,
		mockSnapshotRepo,
		mockScoreRepo,
		mockAggregator,
		scoring.NewEngine(),
		cache.NoopCache{},
	)

	t.Run("Negócio inexistente", func(t *testing.T) {
		mockBusinessRepo.EXPECT().
			GetByID(gomock.Any(), "BIZ404").
			Return(nil, nil)

		snapshot, err := service.SyncBusiness(context.Background(), "BIZ404")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, syncing.ErrBusinessNotFound)
	})

	t.Run("Negócio sem conta vinculada", func(t *testing.T) {
		business := &domain.Business{
			ID:     "BIZ002",
			Name:   "Negócio sem vínculo",
			Status: domain.BusinessActive,
		}
		mockBusinessRepo.EXPECT().
			GetByID(gomock.Any(), "BIZ002").
			Return(business, nil)

		snapshot, err := service.SyncBusiness(context.Background(), "BIZ002")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, syncing.ErrBusinessNotLinked)
	})
}

func TestService_GetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	mockScoreRepo := repomocks.NewMockScoreRepository(ctrl)
	mockAggregator := syncmocks.NewMockAggregator(ctrl)

	service := syncing.NewService(
		mockBusinessRepo,
		mockSnapshotRepo,
		mockScoreRepo,
		mockAggregator,
		scoring.NewEngine(),
		cache.NoopCache{},
	)

	t.Run("Snapshot existente é devolvido", func(t *testing.T) {
		stored := &domain.ProfileSnapshot{BusinessName: "Ótica Central"}
		mockSnapshotRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(stored, nil)

		snapshot, err := service.GetSnapshot(context.Background(), "BIZ001")

		assert.NoError(t, err)
		assert.Equal(t, stored, snapshot)
	})

	t.Run("Sem snapshot persistido devolve not found", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(nil, nil)

		snapshot, err := service.GetSnapshot(context.Background(), "BIZ001")

		assert.Nil(t, snapshot)
		assert.ErrorIs(t, err, syncing.ErrSnapshotNotFound)
	})
}

func TestService_GetScore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSnapshotRepo := repomocks.NewMockSnapshotRepository(ctrl)
	mockScoreRepo := repomocks.NewMockScoreRepository(ctrl)
	mockAggregator := syncmocks.NewMockAggregator(ctrl)

	service := syncing.NewService(
		mockBusinessRepo,
		mockSnapshotRepo,
		mockScoreRepo,
		mockAggregator,
		scoring.NewEngine(),
		cache.NoopCache{},
	)

	t.Run("Score persistido é devolvido direto", func(t *testing.T) {
		stored := &domain.ScoreBreakdown{OverallScore: 72, Status: domain.ScoreStatusGood}
		mockScoreRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(stored, nil)

		breakdown, err := service.GetScore(context.Background(), "BIZ001")

		assert.NoError(t, err)
		assert.Equal(t, stored, breakdown)
	})

	t.Run("Score ausente é recomputado a partir do snapshot", func(t *testing.T) {
		snapshot := &domain.ProfileSnapshot{
			Description:   "Descrição completa",
			Phone:         "+55 11 99999-0000",
			AverageRating: 4.7,
			TotalReviews:  55,
		}

		mockScoreRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(nil, nil)

		mockSnapshotRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(snapshot, nil)

		// O recomputado é persistido de volta, best-effort
		mockScoreRepo.EXPECT().
			Save(gomock.Any(), "BIZ001", gomock.Any()).
			Return(nil)

		breakdown, err := service.GetScore(context.Background(), "BIZ001")

		assert.NoError(t, err)
		assert.NotNil(t, breakdown)
		assert.Len(t, breakdown.Sections, 8)
		assert.Greater(t, breakdown.OverallScore, 0)
	})

	t.Run("Sem score e sem snapshot devolve not found", func(t *testing.T) {
		mockScoreRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(nil, nil)

		mockSnapshotRepo.EXPECT().
			Get(gomock.Any(), "BIZ001").
			Return(nil, nil)

		breakdown, err := service.GetScore(context.Background(), "BIZ001")

		assert.Nil(t, breakdown)
		assert.ErrorIs(t, err, syncing.ErrSnapshotNotFound)
	})
}
