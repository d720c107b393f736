package commission

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de comissão
var (
	// Erros de validação: o cálculo falha por inteiro, nunca produz
	// resultado parcial, pois valores de repasse precisam ser exatos
	ErrUnknownService     = errors.New("atendimento referencia serviço fora do catálogo")
	ErrUnknownBarber      = errors.New("atendimento referencia barbeiro desconhecido")
	ErrInvalidPercentage  = errors.New("percentual de comissão deve estar entre 0 e 1")
	ErrInvalidMonthFormat = errors.New("mês inválido")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// CommissionError é um erro com contexto adicional para comissão
type CommissionError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	ServiceID string // ID do serviço envolvido (quando aplicável)
	BarberID  string // ID do barbeiro envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *CommissionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *CommissionError) Unwrap() error {
	return e.Err
}

// NewCommissionError cria um novo CommissionError
func NewCommissionError(baseErr error, code string, details string) *CommissionError {
	return &CommissionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
