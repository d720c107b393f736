// Package commission implementa o rateio de comissão: a fatia de cada
// barbeiro na receita de assinaturas, proporcional aos minutos trabalhados.
package commission

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

// Allocate calcula a comissão de cada barbeiro no período. O arredondamento
// para duas casas acontece uma única vez, no valor final, para não acumular
// erro ao longo de muitos atendimentos pequenos. Estratégia: arredondamento
// half away from zero (decimal.Round).
func Allocate(
	records []domain.ServiceRecord,
	services []domain.Service,
	barbers []domain.Barber,
	totalRevenue decimal.Decimal,
	commissionPct decimal.Decimal,
) ([]domain.CommissionResult, error) {
	if commissionPct.IsNegative() || commissionPct.GreaterThan(decimal.NewFromInt(1)) {
		return nil, NewCommissionError(ErrInvalidPercentage, "COM_003", commissionPct.String())
	}

	minutesByService := make(map[string]int, len(services))
	for _, service := range services {
		minutesByService[service.ID] = service.DurationMinutes
	}

	knownBarbers := make(map[string]bool, len(barbers))
	for _, barber := range barbers {
		knownBarbers[barber.ID] = true
	}

	minutesByBarber := make(map[string]int)
	totalMinutes := 0

	for _, record := range records {
		duration, ok := minutesByService[record.ServiceID]
		if !ok {
			return nil, &CommissionError{
				Err:       ErrUnknownService,
				Code:      "COM_001",
				ServiceID: record.ServiceID,
			}
		}

		if !knownBarbers[record.BarberID] {
			return nil, &CommissionError{
				Err:      ErrUnknownBarber,
				Code:     "COM_002",
				BarberID: record.BarberID,
			}
		}

		minutes := record.Quantity * duration
		minutesByBarber[record.BarberID] += minutes
		totalMinutes += minutes
	}

	pool := totalRevenue.Mul(commissionPct)

	results := make([]domain.CommissionResult, 0, len(barbers))
	for _, barber := range barbers {
		result := domain.CommissionResult{
			BarberID:          barber.ID,
			BarberName:        barber.Name,
			MinutesWorked:     minutesByBarber[barber.ID],
			ParticipationRate: decimal.Zero,
			CommissionValue:   decimal.Zero,
		}

		// Mês sem atividade: toda participação é zero, nunca divisão por zero
		if totalMinutes > 0 {
			result.ParticipationRate = decimal.NewFromInt(int64(result.MinutesWorked)).
				Div(decimal.NewFromInt(int64(totalMinutes)))
			result.CommissionValue = result.ParticipationRate.Mul(pool).Round(2)
		}

		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MinutesWorked != results[j].MinutesWorked {
			return results[i].MinutesWorked > results[j].MinutesWorked
		}
		return results[i].BarberName < results[j].BarberName
	})

	return results, nil
}

// TotalMinutes soma os minutos de todos os resultados
func TotalMinutes(results []domain.CommissionResult) int {
	total := 0
	for _, result := range results {
		total += result.MinutesWorked
	}
	return total
}
