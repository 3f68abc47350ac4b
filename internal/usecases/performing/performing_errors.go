package performing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de performance
var (
	// Erros de validação
	ErrInvalidPeriod = errors.New("invalid period selector")
	ErrInvalidPolicy = errors.New("invalid threshold policy")

	// Erros de fontes de dados
	ErrSourceUnavailable = errors.New("error fetching raw records")
	ErrStaffDirectory    = errors.New("error resolving staff directory")
	ErrSnapshotSource    = errors.New("error fetching performance snapshots")
)

// PerformingError é um erro com contexto adicional para o motor de performance
type PerformingError struct {
	Err            error
	OrganizationID string
	Details        string
}

// Error implementa a interface error
func (e *PerformingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PerformingError) Unwrap() error {
	return e.Err
}

// NewPerformingError cria um novo PerformingError
func NewPerformingError(err error, organizationID string, details string) *PerformingError {
	return &PerformingError{
		Err:            err,
		OrganizationID: organizationID,
		Details:        details,
	}
}
