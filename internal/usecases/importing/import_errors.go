package importing

import (
	"errors"
	"fmt"
)

// Erros fatais de lote: nada é importado quando ocorrem.
var (
	ErrMissingColumn  = errors.New("required column not found")
	ErrUnreadableFile = errors.New("unreadable or corrupt file")
)

// Erros de escopo de linha: registrados em RejectedRow, o lote continua.
var (
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidAmount = errors.New("invalid amount")
)

// Códigos de motivo gravados nas linhas rejeitadas.
const (
	ReasonInvalidDate   = "INVALID_DATE"
	ReasonInvalidAmount = "INVALID_AMOUNT"
)

// ImportError é um erro de lote com contexto adicional sobre o arquivo.
type ImportError struct {
	Err     error  // Erro base
	Column  string // Coluna envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Column)
	}
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewMissingColumnError cria o erro fatal de coluna obrigatória ausente.
func NewMissingColumnError(column string) *ImportError {
	return &ImportError{Err: ErrMissingColumn, Column: column}
}

// NewUnreadableFileError cria o erro fatal de arquivo ilegível.
func NewUnreadableFileError(details string) *ImportError {
	return &ImportError{Err: ErrUnreadableFile, Details: details}
}
