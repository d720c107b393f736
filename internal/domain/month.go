// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"time"
)

// MonthKey identifica um mês calendário no formato YYYY-MM (ex: 2025-05).
// Todos os cálculos de rotação e comissão são particionados por MonthKey.
type MonthKey string

const monthKeyLayout = "2006-01"

// ParseMonthKey valida uma string no formato YYYY-MM
func ParseMonthKey(s string) (MonthKey, error) {
	if _, err := time.Parse(monthKeyLayout, s); err != nil {
		return "", fmt.Errorf("mês inválido %q (esperado YYYY-MM): %w", s, err)
	}
	return MonthKey(s), nil
}

// MonthKeyFromDate deriva o MonthKey a partir de uma data
func MonthKeyFromDate(date time.Time) MonthKey {
	return MonthKey(date.Format(monthKeyLayout))
}

// CurrentMonthKey retorna o MonthKey do mês corrente
func CurrentMonthKey() MonthKey {
	return MonthKeyFromDate(time.Now())
}

// PreviousMonthKey retorna o MonthKey do mês anterior ao informado
func (m MonthKey) PreviousMonthKey() MonthKey {
	t, err := time.Parse(monthKeyLayout, string(m))
	if err != nil {
		return m
	}
	return MonthKeyFromDate(t.AddDate(0, -1, 0))
}

// Contains verifica se a data pertence a este mês
func (m MonthKey) Contains(date time.Time) bool {
	return MonthKeyFromDate(date) == m
}

func (m MonthKey) String() string {
	return string(m)
}
