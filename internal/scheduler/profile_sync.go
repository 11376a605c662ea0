package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/internal/usecases/syncing"
)

// ProfileSyncConfig representa a configuração do agendador de re-sincronização
type ProfileSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// ProfileSyncService re-sincroniza em background todos os negócios ativos
// vinculados a uma conta conectada. O sync principal continua sendo sob
// demanda; o agendador apenas mantém snapshots e scores frescos de um dia
// para o outro.
type ProfileSyncService struct {
	scheduler           *gocron.Scheduler
	config              ProfileSyncConfig
	businessRepo        repository.BusinessRepository
	syncService         syncing.Syncer
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewProfileSyncService cria uma nova instância do agendador de re-sincronização
func NewProfileSyncService(
	businessRepo repository.BusinessRepository,
	syncService syncing.Syncer,
	appConfig *config.Config,
) *ProfileSyncService {
	syncConfig := ProfileSyncConfig{
		CronSchedule:      appConfig.ProfileSync.CronSchedule,
		MaxConcurrentJobs: appConfig.ProfileSync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.ProfileSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de re-sincronização de perfis carregada")

	return &ProfileSyncService{
		scheduler:    scheduler,
		config:       syncConfig,
		businessRepo: businessRepo,
		syncService:  syncService,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *ProfileSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Re-sincronização de perfis desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de re-sincronização de perfis")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllProfiles(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar re-sincronização de perfis: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de re-sincronização de perfis")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow dispara uma rodada completa fora do horário agendado (rota de cron
// manual). Roda em background com contexto próprio: o ciclo de vida da rodada
// não pode ficar preso ao da requisição que a disparou.
func (s *ProfileSyncService) RunNow() {
	go s.syncAllProfiles(context.Background())
}

// Status reporta o estado atual do agendador
func (s *ProfileSyncService) Status() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"enabled":                s.config.SyncEnabled,
		"running":                s.syncRunning,
		"cron_schedule":          s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

// syncAllProfiles re-sincroniza todos os negócios ativos já vinculados
func (s *ProfileSyncService) syncAllProfiles(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Re-sincronização de perfis já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	businesses, err := s.businessRepo.List(ctx, []domain.BusinessStatus{domain.BusinessActive})
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de negócios para re-sincronização")
		return
	}

	linked := make([]*domain.Business, 0, len(businesses))
	for _, business := range businesses {
		if business.AccountID != nil && business.Location.IsLinked() {
			linked = append(linked, business)
		}
	}

	if len(linked) == 0 {
		logrus.Info("Nenhum negócio vinculado encontrado para re-sincronização")
		return
	}

	logrus.WithField("businesses", len(linked)).Info("Iniciando re-sincronização de perfis")

	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	succeeded := 0
	failed := 0
	var mu sync.Mutex

	for _, business := range linked {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(b *domain.Business) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if _, err := s.syncService.SyncBusiness(ctx, b.ID); err != nil {
				logrus.WithFields(logrus.Fields{
					"business_id": b.ID,
					"error":       err.Error(),
				}).Error("Erro ao re-sincronizar negócio")

				mu.Lock()
				failed++
				mu.Unlock()
				return
			}

			mu.Lock()
			succeeded++
			mu.Unlock()
		}(business)
	}

	wg.Wait()

	logrus.WithFields(logrus.Fields{
		"duration":  time.Since(startTime).String(),
		"succeeded": succeeded,
		"failed":    failed,
	}).Info("Re-sincronização de perfis concluída")
}
