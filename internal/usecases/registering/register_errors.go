package registering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de registros de venda
var (
	// Erros de validação
	ErrIDRequired       = errors.New("haircut ID is required")
	ErrHaircutNotFound  = errors.New("haircut not found")
	ErrNonPositivePrice = errors.New("price must be greater than zero")
	ErrInvalidDate      = errors.New("invalid haircut date")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// RegisterError é um erro com contexto adicional para registros
type RegisterError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	HaircutID string // ID do registro envolvido (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegisterError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegisterError) Unwrap() error {
	return e.Err
}

// NewRegisterError cria um novo RegisterError
func NewRegisterError(err error, code string, details string) *RegisterError {
	return &RegisterError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewRegisterErrorWithID cria um novo RegisterError com o ID do registro
func NewRegisterErrorWithID(err error, code string, haircutID string, details string) *RegisterError {
	return &RegisterError{
		Err:       err,
		Code:      code,
		HaircutID: haircutID,
		Details:   details,
	}
}
