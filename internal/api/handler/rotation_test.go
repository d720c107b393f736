package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/internal/usecases/rotation"
	"github.com/vfg2006/barber-manager-api/pkg/apiErrors"
)

// fakeRotationService implementa rotation.RotationService para os testes
type fakeRotationService struct {
	queue       *domain.RotationQueueResponse
	event       *domain.RotationEvent
	err         error
	gotMonth    domain.MonthKey
	gotBarberID string
}

func (f *fakeRotationService) GetQueue(month domain.MonthKey) (*domain.RotationQueueResponse, error) {
	f.gotMonth = month
	return f.queue, f.err
}

func (f *fakeRotationService) RecordService(barberID string, date time.Time) (*domain.RotationEvent, error) {
	f.gotBarberID = barberID
	return f.event, f.err
}

func (f *fakeRotationService) PassTurn(barberID string, date time.Time) (*domain.RotationEvent, error) {
	f.gotBarberID = barberID
	return f.event, f.err
}

func withRouteParams(r *http.Request, barberID string) *http.Request {
	params := httprouter.Params{{Key: "id", Value: barberID}}
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

func TestGetRotationQueue(t *testing.T) {
	service := &fakeRotationService{
		queue: &domain.RotationQueueResponse{
			Month: domain.MonthKey("2025-05"),
			Queue: []domain.RankedBarber{
				{Position: 1, BarberID: "B003", BarberName: "Carla", IsBarberDue: true},
				{Position: 2, BarberID: "B001", BarberName: "Ana", TotalCount: 3},
			},
			GeneratedAt: time.Date(2025, 5, 16, 10, 0, 0, 0, time.UTC),
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/rotation/queue?month=2025-05", nil)
	rec := httptest.NewRecorder()

	GetRotationQueue(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MonthKey("2025-05"), service.gotMonth)

	var response domain.RotationQueueResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Len(t, response.Queue, 2)
	assert.True(t, response.Queue[0].IsBarberDue)
}

func TestGetRotationQueue_InvalidMonthParam(t *testing.T) {
	service := &fakeRotationService{}

	req := httptest.NewRequest(http.MethodGet, "/v1/rotation/queue?month=05-2025", nil)
	rec := httptest.NewRecorder()

	GetRotationQueue(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
}

func TestRecordBarberService(t *testing.T) {
	service := &fakeRotationService{
		event: &domain.RotationEvent{
			ID:       "evt001",
			BarberID: "B001",
			Kind:     domain.EventServiceRecorded,
			Count:    1,
			Month:    domain.MonthKey("2025-05"),
		},
	}

	body := bytes.NewBufferString(`{"date":"2025-05-16"}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/rotation/barbers/B001/service", body)
	req = withRouteParams(req, "B001")
	rec := httptest.NewRecorder()

	RecordBarberService(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "B001", service.gotBarberID)

	var event domain.RotationEvent
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &event))
	assert.Equal(t, domain.EventServiceRecorded, event.Kind)
}

func TestRecordBarberService_BarberNotFound(t *testing.T) {
	service := &fakeRotationService{
		err: rotation.NewRotationError(rotation.ErrBarberNotFound, "ROT_001", "B999", ""),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/rotation/barbers/B999/service", nil)
	req = withRouteParams(req, "B999")
	rec := httptest.NewRecorder()

	RecordBarberService(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrBarberNotFound, apiErr.Code)
}

func TestPassBarberTurn_InvalidMonth(t *testing.T) {
	service := &fakeRotationService{
		err: rotation.NewRotationError(rotation.ErrInvalidMonth, "ROT_002", "B001", "2025-04"),
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/rotation/barbers/B001/pass", nil)
	req = withRouteParams(req, "B001")
	rec := httptest.NewRecorder()

	PassBarberTurn(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrInvalidMonth, apiErr.Code)
}
