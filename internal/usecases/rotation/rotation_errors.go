package rotation

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto da lista da vez
var (
	// Erros de validação
	ErrBarberNotFound  = errors.New("barbeiro não encontrado")
	ErrBarberInactive  = errors.New("barbeiro inativo não participa da lista da vez")
	ErrInvalidMonth    = errors.New("data fora do mês corrente")
	ErrBarberIDMissing = errors.New("identificador do barbeiro é obrigatório")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// RotationError é um erro com contexto adicional para a lista da vez
type RotationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	BarberID string // ID do barbeiro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RotationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RotationError) Unwrap() error {
	return e.Err
}

// NewRotationError cria um novo RotationError com contexto de barbeiro
func NewRotationError(baseErr error, code string, barberID string, details string) *RotationError {
	return &RotationError{
		Err:      baseErr,
		Code:     code,
		BarberID: barberID,
		Details:  details,
	}
}

// IsValidationError verifica se o erro é de entrada inválida do chamador
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBarberNotFound) ||
		errors.Is(err, ErrBarberInactive) ||
		errors.Is(err, ErrInvalidMonth) ||
		errors.Is(err, ErrBarberIDMissing)
}
