package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/cache"
	"github.com/vfg2006/profile-health-api/infrastructure/database/postgres"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/api"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/scheduler"
	"github.com/vfg2006/profile-health-api/internal/usecases/connecting"
	"github.com/vfg2006/profile-health-api/internal/usecases/managing"
	"github.com/vfg2006/profile-health-api/internal/usecases/scoring"
	"github.com/vfg2006/profile-health-api/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	businessRepo := repository.NewBusinessRepository(pgConn)
	accountRepo := repository.NewConnectedAccountRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	scoreRepo := repository.NewScoreRepository(pgConn)

	gbpClient := gbpclient.NewClient(cfg)
	tokenManager := gbpclient.NewTokenManager(cfg, gbpClient, accountRepo)
	gbpIntegrator := gbp.New(cfg, gbpClient, tokenManager)

	var profileCache cache.Cache = cache.NoopCache{}
	if cfg.Cache.Enabled {
		profileCache = cache.NewRedisCache(cfg.Cache)
		logrus.WithField("addr", cfg.Cache.RedisAddr).Info("Cache Redis habilitado")
	}

	scoreEngine := scoring.NewEngine()
	syncService := syncing.NewService(businessRepo, snapshotRepo, scoreRepo, gbpIntegrator, scoreEngine, profileCache)
	businessService := managing.NewService(businessRepo, accountRepo)
	connectService := connecting.NewService(cfg, gbpClient, accountRepo, businessRepo)

	// Agendador de re-sincronização noturna (desabilitado por padrão)
	profileSyncService := scheduler.NewProfileSyncService(businessRepo, syncService, cfg)
	if err := profileSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de re-sincronização de perfis")
	}

	server, err := api.New(
		cfg,
		syncService,
		businessService,
		connectService,
		profileSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
