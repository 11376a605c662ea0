package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/profile-health-api/internal/api/handler/router"
	"github.com/vfg2006/profile-health-api/internal/usecases/connecting"
	"github.com/vfg2006/profile-health-api/internal/usecases/managing"
	"github.com/vfg2006/profile-health-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Businesses(service managing.BusinessManager) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses",
			Method:  http.MethodPost,
			Handler: CreateBusiness(service),
		},
		{
			Path:    "/v1/businesses",
			Method:  http.MethodGet,
			Handler: ListBusinesses(service),
		},
		{
			Path:    "/v1/businesses/:id",
			Method:  http.MethodGet,
			Handler: GetBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id",
			Method:  http.MethodPut,
			Handler: UpdateBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id/link",
			Method:  http.MethodPost,
			Handler: LinkBusinessAccount(service),
		},
	}
}

func Sync(service syncing.Syncer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/businesses/:id/sync",
			Method:  http.MethodPost,
			Handler: SyncBusiness(service),
		},
		{
			Path:    "/v1/businesses/:id/snapshot",
			Method:  http.MethodGet,
			Handler: GetSnapshot(service),
		},
		{
			Path:    "/v1/businesses/:id/score",
			Method:  http.MethodGet,
			Handler: GetScore(service),
		},
	}
}

func OAuth(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/oauth/google/connect",
			Method:  http.MethodGet,
			Handler: ConnectAccount(service),
		},
		{
			Path:    "/v1/oauth/google/callback",
			Method:  http.MethodGet,
			Handler: OAuthCallback(service),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodDelete,
			Handler: DisconnectAccount(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
