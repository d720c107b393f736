package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/barber-manager-api/internal/domain"
	"github.com/vfg2006/barber-manager-api/internal/usecases/commission"
	"github.com/vfg2006/barber-manager-api/pkg/apiErrors"
)

// fakeCommissionService implementa commission.CommissionService para os testes
type fakeCommissionService struct {
	report   *domain.CommissionReport
	periods  *domain.AvailablePeriods
	err      error
	gotMonth domain.MonthKey
}

func (f *fakeCommissionService) GetMonthlyReport(month domain.MonthKey) (*domain.CommissionReport, error) {
	f.gotMonth = month
	return f.report, f.err
}

func (f *fakeCommissionService) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	return f.periods, f.err
}

func TestGetCommissionReport(t *testing.T) {
	service := &fakeCommissionService{
		report: &domain.CommissionReport{
			Month:                domain.MonthKey("2025-05"),
			TotalRevenue:         decimal.NewFromInt(1000),
			CommissionPercentage: decimal.NewFromFloat(0.40),
			TotalMinutes:         200,
			Results: []domain.CommissionResult{
				{
					BarberID:        "B001",
					BarberName:      "Ana",
					MinutesWorked:   120,
					CommissionValue: decimal.NewFromFloat(240.00),
				},
			},
			GeneratedAt: time.Date(2025, 6, 1, 5, 0, 0, 0, time.UTC),
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/commission/report?month=2025-05", nil)
	rec := httptest.NewRecorder()

	GetCommissionReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.MonthKey("2025-05"), service.gotMonth)

	var report domain.CommissionReport
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 200, report.TotalMinutes)
	assert.Len(t, report.Results, 1)
}

func TestGetCommissionReport_UnknownService(t *testing.T) {
	service := &fakeCommissionService{
		err: &commission.CommissionError{
			Err:       commission.ErrUnknownService,
			Code:      "COM_001",
			ServiceID: "S999",
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/commission/report?month=2025-05", nil)
	rec := httptest.NewRecorder()

	GetCommissionReport(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var apiErr apiErrors.APIError
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrUnknownService, apiErr.Code)
	assert.Equal(t, "S999", apiErr.Details)
}

func TestGetCommissionPeriods(t *testing.T) {
	service := &fakeCommissionService{
		periods: &domain.AvailablePeriods{
			Periods: []string{"2025-05", "2025-04"},
			Years:   []string{"2025"},
			Months:  []string{"05", "04"},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/commission/periods", nil)
	rec := httptest.NewRecorder()

	GetCommissionPeriods(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var periods domain.AvailablePeriods
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &periods))
	assert.Equal(t, []string{"2025-05", "2025-04"}, periods.Periods)
}
