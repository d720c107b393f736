package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionResult é a fatia de comissão de um barbeiro em um mês
type CommissionResult struct {
	BarberID          string          `json:"barber_id"`
	BarberName        string          `json:"barber_name"`
	MinutesWorked     int             `json:"minutes_worked"`
	ParticipationRate decimal.Decimal `json:"participation_rate"` // Fração [0,1] dos minutos totais
	CommissionValue   decimal.Decimal `json:"commission_value"`   // Valor em moeda, 2 casas decimais
}

// CommissionReport é o relatório de comissão de um mês
type CommissionReport struct {
	Month                MonthKey           `json:"month"`
	TotalRevenue         decimal.Decimal    `json:"total_revenue"`
	CommissionPercentage decimal.Decimal    `json:"commission_percentage"` // Fração [0,1] (ex: 0.40 para 40%)
	TotalMinutes         int                `json:"total_minutes"`
	Results              []CommissionResult `json:"results"`
	GeneratedAt          time.Time          `json:"generated_at"`
}

// AvailablePeriods representa os meses com atividade registrada
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato YYYY-MM
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}
