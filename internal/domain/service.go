package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service é um serviço do catálogo da barbearia (corte, barba, etc)
type Service struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	DurationMinutes int             `json:"duration_minutes"` // Tempo em minutos por unidade
	Price           decimal.Decimal `json:"price"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ServiceRecord é um atendimento concluído, insumo do cálculo de comissão
type ServiceRecord struct {
	ID        string    `json:"id"`
	BarberID  string    `json:"barber_id"`
	ServiceID string    `json:"service_id"`
	Quantity  int       `json:"quantity"`
	Date      time.Time `json:"date"`
	Month     MonthKey  `json:"month"`
	CreatedAt time.Time `json:"created_at"`
}
