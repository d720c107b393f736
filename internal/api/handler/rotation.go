package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/internal/usecases/rotation"
	"github.com/vfg2006/barber-manager-api/pkg/apiErrors"
	"github.com/vfg2006/barber-manager-api/pkg/log"
	"github.com/vfg2006/barber-manager-api/pkg/utils"
)

// rotationEventRequest é o corpo opcional dos registros da lista da vez
type rotationEventRequest struct {
	Date string `json:"date,omitempty"` // Formato YYYY-MM-DD; padrão: hoje
}

// GetRotationQueue retorna a lista da vez do mês consultado
func GetRotationQueue(service rotation.RotationService) http.Handler {
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

		queue, err := service.GetQueue(month)
		if err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"month": month.String(),
			}).Error("lista-da-vez: erro ao montar a lista")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar a lista da vez", nil)
			return
		}

		logger.WithFields(log.Fields{
			"month":   month.String(),
			"barbers": len(queue.Queue),
		}).Info("lista-da-vez: lista montada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(queue); err != nil {
			logger.WithError(err).Error("lista-da-vez: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// RecordBarberService registra um atendimento do barbeiro na lista da vez
func RecordBarberService(service rotation.RotationService) http.Handler {
	return rotationEventHandler("atendimento", service.RecordService)
}

// PassBarberTurn registra que o barbeiro passou a vez
func PassBarberTurn(service rotation.RotationService) http.Handler {
	return rotationEventHandler("passar-a-vez", service.PassTurn)
}

func rotationEventHandler(
	action string,
	record func(barberID string, date time.Time) (*domain.RotationEvent, error),
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		barberID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if barberID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do barbeiro não informado", nil)
			return
		}

		var date time.Time
		if r.Body != nil && r.ContentLength > 0 {
			var req rotationEventRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
				return
			}

			if req.Date != "" {
				parsed, err := utils.ParseDate(req.Date)
				if err != nil {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida. Use o formato YYYY-MM-DD", nil)
					return
				}
				date = *parsed
			}
		}

		event, err := record(barberID, date)
		if err != nil {
			writeRotationError(w, logger, action, barberID, err)
			return
		}

		logger.WithFields(log.Fields{
			"barber_id": barberID,
			"event_id":  event.ID,
			"kind":      string(event.Kind),
		}).Infof("lista-da-vez: %s registrado com sucesso", action)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(event); err != nil {
			logger.WithError(err).Error("lista-da-vez: erro ao codificar resposta")
		}
	})
}

func writeRotationError(w http.ResponseWriter, logger log.Logger, action string, barberID string, err error) {
	logger.WithError(err).WithFields(log.Fields{
		"barber_id": barberID,
	}).Warnf("lista-da-vez: falha ao registrar %s", action)

	switch {
	case errors.Is(err, rotation.ErrBarberNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBarberNotFound, "Barbeiro não encontrado", barberID)
	case errors.Is(err, rotation.ErrBarberInactive):
		apiErrors.WriteError(w, apiErrors.ErrBarberInactive, "Barbeiro inativo não participa da lista da vez", barberID)
	case errors.Is(err, rotation.ErrInvalidMonth):
		apiErrors.WriteError(w, apiErrors.ErrInvalidMonth, "A data informada está fora do mês corrente", nil)
	case errors.Is(err, rotation.ErrBarberIDMissing):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do barbeiro não informado", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar evento da lista da vez", nil)
	}
}
