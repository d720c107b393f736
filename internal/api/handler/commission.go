package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/internal/usecases/commission"
	"github.com/vfg2006/barber-manager-api/pkg/apiErrors"
	"github.com/vfg2006/barber-manager-api/pkg/log"
)

// GetCommissionReport retorna o relatório de comissão do mês consultado
func GetCommissionReport(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month := domain.CurrentMonthKey()
		if monthParam := r.URL.Query().Get("month"); monthParam != "" {
			parsed, err := domain.ParseMonthKey(monthParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Mês inválido. Use o formato YYYY-MM (ex: 2025-05)", nil)
				return
			}
			month = parsed
		}

		logger.WithFields(log.Fields{
			"month": month.String(),
		}).Info("comissao: calculando relatório de comissão")

		report, err := service.GetMonthlyReport(month)
		if err != nil {
			writeCommissionError(w, logger, month, err)
			return
		}

		logger.WithFields(log.Fields{
			"month":         month.String(),
			"barbers":       len(report.Results),
			"total_minutes": report.TotalMinutes,
		}).Info("comissao: relatório calculado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("comissao: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetCommissionPeriods retorna os meses com atendimentos registrados
func GetCommissionPeriods(service commission.CommissionService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("comissao-periodos: buscando períodos disponíveis")

		availablePeriods, err := service.GetAvailablePeriods()
		if err != nil {
			logger.WithError(err).Error("comissao-periodos: erro ao buscar períodos disponíveis")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar períodos disponíveis", nil)
			return
		}

		logger.WithFields(log.Fields{
			"total_periods": len(availablePeriods.Periods),
		}).Info("comissao-periodos: períodos disponíveis recuperados com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(availablePeriods); err != nil {
			logger.WithError(err).Error("comissao-periodos: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

func writeCommissionError(w http.ResponseWriter, logger log.Logger, month domain.MonthKey, err error) {
	logger.WithError(err).WithFields(log.Fields{
		"month": month.String(),
	}).Error("comissao: erro ao calcular relatório")

	var commissionErr *commission.CommissionError

	switch {
	case errors.Is(err, commission.ErrUnknownService):
		details := ""
		if errors.As(err, &commissionErr) {
			details = commissionErr.ServiceID
		}
		apiErrors.WriteError(w, apiErrors.ErrUnknownService, "Atendimento referencia serviço fora do catálogo", details)
	case errors.Is(err, commission.ErrUnknownBarber):
		details := ""
		if errors.As(err, &commissionErr) {
			details = commissionErr.BarberID
		}
		apiErrors.WriteError(w, apiErrors.ErrUnknownBarber, "Atendimento referencia barbeiro desconhecido", details)
	case errors.Is(err, commission.ErrInvalidPercentage):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPercentage, "Percentual de comissão fora do intervalo [0,1]", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao calcular relatório de comissão", nil)
	}
}
