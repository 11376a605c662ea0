package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/profile-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profile-health-api/internal/domain"
	syncmocks "github.com/vfg2006/profile-health-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func linkedBusiness(id string) *domain.Business {
	return &domain.Business{
		ID:        id,
		Name:      "Negócio " + id,
		Status:    domain.BusinessActive,
		AccountID: stringPtr("ACC001"),
		Location: domain.LocationReference{
			AccountID:  "1088",
			LocationID: "loc-" + id,
		},
	}
}

func newTestService(businessRepo *repomocks.MockBusinessRepository, syncService *syncmocks.MockSyncer) *ProfileSyncService {
	return &ProfileSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config: ProfileSyncConfig{
			CronSchedule:      "0 3 * * *",
			MaxConcurrentJobs: 2,
			SyncEnabled:       true,
		},
		businessRepo: businessRepo,
		syncService:  syncService,
	}
}

func TestProfileSyncService_syncAllProfiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSyncService := syncmocks.NewMockSyncer(ctrl)

	service := newTestService(mockBusinessRepo, mockSyncService)

	tests := []struct {
		name  string
		setup func()
	}{
		{
			name: "Sincroniza todos os negócios vinculados",
			setup: func() {
				businesses := []*domain.Business{
					linkedBusiness("BIZ001"),
					linkedBusiness("BIZ002"),
					linkedBusiness("BIZ003"),
				}

				mockBusinessRepo.EXPECT().
					List(gomock.Any(), []domain.BusinessStatus{domain.BusinessActive}).
					Return(businesses, nil)

				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ001").
					Return(&domain.ProfileSnapshot{}, nil)
				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ002").
					Return(&domain.ProfileSnapshot{}, nil)
				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ003").
					Return(&domain.ProfileSnapshot{}, nil)
			},
		},
		{
			name: "Negócios sem vínculo são pulados",
			setup: func() {
				unlinked := &domain.Business{
					ID:     "BIZ004",
					Name:   "Sem vínculo",
					Status: domain.BusinessActive,
				}
				withoutLocation := &domain.Business{
					ID:        "BIZ005",
					Name:      "Conta sem location",
					Status:    domain.BusinessActive,
					AccountID: stringPtr("ACC001"),
				}

				mockBusinessRepo.EXPECT().
					List(gomock.Any(), []domain.BusinessStatus{domain.BusinessActive}).
					Return([]*domain.Business{linkedBusiness("BIZ001"), unlinked, withoutLocation}, nil)

				// Somente o vinculado é sincronizado
				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ001").
					Return(&domain.ProfileSnapshot{}, nil)
			},
		},
		{
			name: "Falha de um negócio não interrompe os demais",
			setup: func() {
				mockBusinessRepo.EXPECT().
					List(gomock.Any(), []domain.BusinessStatus{domain.BusinessActive}).
					Return([]*domain.Business{linkedBusiness("BIZ001"), linkedBusiness("BIZ002")}, nil)

				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ001").
					Return(nil, errors.New("reautorização necessária"))
				mockSyncService.EXPECT().
					SyncBusiness(gomock.Any(), "BIZ002").
					Return(&domain.ProfileSnapshot{}, nil)
			},
		},
		{
			name: "Erro ao listar negócios encerra a rodada",
			setup: func() {
				mockBusinessRepo.EXPECT().
					List(gomock.Any(), []domain.BusinessStatus{domain.BusinessActive}).
					Return(nil, errors.New("conexão recusada"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			service.syncAllProfiles(context.Background())

			// A rodada sempre libera a flag de execução ao terminar
			assert.False(t, service.syncRunning)
			assert.False(t, service.lastSyncCompletedAt.IsZero())
		})
	}
}

func TestProfileSyncService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSyncService := syncmocks.NewMockSyncer(ctrl)

	service := newTestService(mockBusinessRepo, mockSyncService)

	status := service.Status()

	assert.Equal(t, true, status["enabled"])
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "0 3 * * *", status["cron_schedule"])
}

func TestProfileSyncService_Start_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBusinessRepo := repomocks.NewMockBusinessRepository(ctrl)
	mockSyncService := syncmocks.NewMockSyncer(ctrl)

	service := newTestService(mockBusinessRepo, mockSyncService)
	service.config.SyncEnabled = false

	// Desabilitado: nada é agendado e nenhum repositório é consultado
	err := service.Start(context.Background())

	assert.NoError(t, err)
}
