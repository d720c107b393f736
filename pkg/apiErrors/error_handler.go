package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro da API
const (
	// Erros da lista da vez (ROT)
	ErrBarberNotFound = "ROT_001" // Barbeiro não encontrado
	ErrInvalidMonth   = "ROT_002" // Data fora do mês corrente
	ErrBarberInactive = "ROT_003" // Barbeiro inativo

	// Erros de comissão (COM)
	ErrUnknownService    = "COM_001" // Atendimento referencia serviço fora do catálogo
	ErrUnknownBarber     = "COM_002" // Atendimento referencia barbeiro desconhecido
	ErrInvalidPercentage = "COM_003" // Percentual de comissão fora de [0,1]

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrBarberNotFound:      http.StatusNotFound,
	ErrInvalidMonth:        http.StatusUnprocessableEntity,
	ErrBarberInactive:      http.StatusUnprocessableEntity,
	ErrUnknownService:      http.StatusUnprocessableEntity,
	ErrUnknownBarber:       http.StatusUnprocessableEntity,
	ErrInvalidPercentage:   http.StatusUnprocessableEntity,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
// Útil para quando você quer envolver um erro existente em um erro de API
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
