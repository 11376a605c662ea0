package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Métricas de sincronização expostas em /metrics
var (
	SyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_sync_total",
		Help: "Sincronizações de perfil por resultado (success, reauthorization_required, persistence_failure, error)",
	}, []string{"result"})

	SyncResourceFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_sync_resource_failures_total",
		Help: "Falhas de busca por recurso durante a sincronização",
	}, []string{"resource"})

	SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "profile_sync_duration_seconds",
		Help:    "Duração de uma sincronização completa, da credencial à persistência",
		Buckets: prometheus.DefBuckets,
	})

	ScoreComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "profile_score_computed_total",
		Help: "Scores calculados por faixa de status",
	}, []string{"status"})

	// Método e status como labels; o path fica de fora para não explodir a
	// cardinalidade com IDs de negócio
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duração das requisições HTTP atendidas pela API",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "status"})
)

// Resultados usados no label result de SyncTotal
const (
	ResultSuccess              = "success"
	ResultReauthorizationError = "reauthorization_required"
	ResultPersistenceFailure   = "persistence_failure"
	ResultError                = "error"
)
