package handler

import (
	"net/http"

	"github.com/vfg2006/barber-manager-api/internal/api/handler/router"
	"github.com/vfg2006/barber-manager-api/internal/usecases/commission"
	"github.com/vfg2006/barber-manager-api/internal/usecases/rotation"
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

// Rotation retorna as rotas da lista da vez
func Rotation(service rotation.RotationService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rotation/queue",
			Method:  http.MethodGet,
			Handler: GetRotationQueue(service),
		},
		{
			Path:    "/v1/rotation/barbers/:id/service",
			Method:  http.MethodPost,
			Handler: RecordBarberService(service),
		},
		{
			Path:    "/v1/rotation/barbers/:id/pass",
			Method:  http.MethodPost,
			Handler: PassBarberTurn(service),
		},
	}
}

// Commission retorna as rotas de relatório de comissão
func Commission(service commission.CommissionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/commission/report",
			Method:  http.MethodGet,
			Handler: GetCommissionReport(service),
		},
		{
			Path:    "/v1/commission/periods",
			Method:  http.MethodGet,
			Handler: GetCommissionPeriods(service),
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
