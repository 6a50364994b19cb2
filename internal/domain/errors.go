package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")

	// ErrAlreadyConfigured: o work já possui uma versão ativa de configuração;
	// a criação inicial exige cadeia vazia (usar Update para evoluir).
	ErrAlreadyConfigured = errors.New("work já possui configuração ativa")

	// ErrVersionConflict: a versão ativa mudou entre a leitura e a escrita
	// (outro editor chegou antes). Recuperável: reler e refazer o merge.
	ErrVersionConflict = errors.New("conflito de versão na configuração do work")
)

// Regras de validação do documento de configuração.
const (
	RuleFeeDistributionSum = "fee_distribution_sum"
	RuleDuplicateOffice    = "duplicate_office"
	RuleDuplicateLawyer    = "duplicate_lawyer"
)

// ValidationError descreve a violação de uma regra do documento de
// configuração. Erro tipado e recuperável: o chamador corrige a entrada,
// nada foi persistido.
type ValidationError struct {
	Rule    string // ver constantes Rule*
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError constrói um ValidationError com mensagem formatada.
func NewValidationError(rule, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// IsValidation indica se err (ou algo na cadeia) é um ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
