package domain

import "time"

// Barber representa um barbeiro cadastrado na barbearia
type Barber struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"` // Apenas barbeiros ativos entram na lista da vez
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
