package domain

import "time"

// RotationEventKind distingue os tipos de evento da lista da vez
type RotationEventKind string

const (
	// EventServiceRecorded registra atendimentos realizados pelo barbeiro
	EventServiceRecorded RotationEventKind = "SERVICE_RECORDED"
	// EventTurnPassed registra que o barbeiro passou a vez
	EventTurnPassed RotationEventKind = "TURN_PASSED"
)

// RotationEvent é um fato imutável da lista da vez. Eventos são apenas
// adicionados; correções geram eventos compensatórios, nunca alterações.
type RotationEvent struct {
	ID        string            `json:"id"`
	BarberID  string            `json:"barber_id"`
	Kind      RotationEventKind `json:"kind"`
	Count     int               `json:"count"` // Quantidade de atendimentos (1 para TURN_PASSED)
	Date      time.Time         `json:"date"`
	Month     MonthKey          `json:"month"` // Derivado de Date, particiona o mês
	CreatedAt time.Time         `json:"created_at"`
}

// MonthlyTally é o total mensal derivado dos eventos de um barbeiro.
// Nunca é armazenado: é recalculado a cada consulta a partir do log.
type MonthlyTally struct {
	BarberID   string `json:"barber_id"`
	TotalCount int    `json:"total_count"` // Atendimentos + vezes passadas
	DaysPassed int    `json:"days_passed"` // Quantidade de eventos TURN_PASSED
}

// RankedBarber é uma posição da lista da vez
type RankedBarber struct {
	Position    int    `json:"position"` // Posição 1-based na lista
	BarberID    string `json:"barber_id"`
	BarberName  string `json:"barber_name"`
	TotalCount  int    `json:"total_count"`
	DaysPassed  int    `json:"days_passed"`
	IsBarberDue bool   `json:"is_barber_due"` // Verdadeiro para todos os empatados na menor contagem
}

// RotationQueueResponse é a lista da vez completa de um mês
type RotationQueueResponse struct {
	Month       MonthKey       `json:"month"`
	Queue       []RankedBarber `json:"queue"`
	GeneratedAt time.Time      `json:"generated_at"`
}
