package commission

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/barber-manager-api/infrastructure/repository"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

type CommissionService interface {
	GetMonthlyReport(month domain.MonthKey) (*domain.CommissionReport, error)
	GetAvailablePeriods() (*domain.AvailablePeriods, error)
}

type Service struct {
	barberRepo  repository.BarberRepository
	serviceRepo repository.ServiceRepository
	recordRepo  repository.ServiceRecordRepository
	revenueRepo repository.RevenueRepository
	percentage  decimal.Decimal
	now         func() time.Time
}

func NewService(
	barberRepo repository.BarberRepository,
	serviceRepo repository.ServiceRepository,
	recordRepo repository.ServiceRecordRepository,
	revenueRepo repository.RevenueRepository,
	percentage decimal.Decimal,
) *Service {
	return &Service{
		barberRepo:  barberRepo,
		serviceRepo: serviceRepo,
		recordRepo:  recordRepo,
		revenueRepo: revenueRepo,
		percentage:  percentage,
		now:         time.Now,
	}
}

// GetMonthlyReport calcula o relatório de comissão do mês a partir dos
// atendimentos registrados. O cálculo é sempre refeito sobre o conjunto
// completo de registros do período; nada fica cacheado entre consultas.
func (s *Service) GetMonthlyReport(month domain.MonthKey) (*domain.CommissionReport, error) {
	// Barbeiros inativos mantêm seus atendimentos históricos no rateio
	barbers, err := s.barberRepo.ListBarbers(false)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar barbeiros")
	}

	services, err := s.serviceRepo.ListServices()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar catálogo de serviços")
	}

	records, err := s.recordRepo.ListByMonth(month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar atendimentos do mês")
	}

	revenue, err := s.revenueRepo.GetMonthlyRevenue(month)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar receita do mês")
	}

	results, err := Allocate(records, services, barbers, revenue, s.percentage)
	if err != nil {
		return nil, err
	}

	return &domain.CommissionReport{
		Month:                month,
		TotalRevenue:         revenue,
		CommissionPercentage: s.percentage,
		TotalMinutes:         TotalMinutes(results),
		Results:              results,
		GeneratedAt:          s.now(),
	}, nil
}

// GetAvailablePeriods retorna os meses com atendimentos registrados,
// detalhando anos e meses únicos para os filtros da interface
func (s *Service) GetAvailablePeriods() (*domain.AvailablePeriods, error) {
	periods, err := s.recordRepo.ListAvailableMonths()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar períodos disponíveis")
	}

	yearsSeen := make(map[string]bool)
	monthsSeen := make(map[string]bool)
	years := make([]string, 0)
	months := make([]string, 0)

	for _, period := range periods {
		parts := strings.SplitN(period, "-", 2)
		if len(parts) != 2 {
			continue
		}

		if !yearsSeen[parts[0]] {
			yearsSeen[parts[0]] = true
			years = append(years, parts[0])
		}
		if !monthsSeen[parts[1]] {
			monthsSeen[parts[1]] = true
			months = append(months, parts[1])
		}
	}

	return &domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}, nil
}
