package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-manager-api/internal/scheduler"
	"github.com/vfg2006/barber-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeMonthlyClose = "monthly-close"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	MonthlyCloseService *scheduler.MonthlyCloseService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeMonthlyClose:
			if services.MonthlyCloseService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de fechamento mensal não disponível", nil)
				return
			}
			services.MonthlyCloseService.TriggerManualClose()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: monthly-close", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"monthly-close": services.MonthlyCloseService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
