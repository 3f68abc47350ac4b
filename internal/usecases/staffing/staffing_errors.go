package staffing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de resolução de equipe
var (
	ErrMappingSource   = errors.New("error fetching staff mappings")
	ErrEmployeeSource  = errors.New("error fetching employee directory")
	ErrMissingIdentity = errors.New("staff identity not found")
)

// StaffingError é um erro com contexto adicional para resolução de equipe
type StaffingError struct {
	Err            error
	OrganizationID string
	Details        string
}

// Error implementa a interface error
func (e *StaffingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *StaffingError) Unwrap() error {
	return e.Err
}

// NewStaffingError cria um novo StaffingError
func NewStaffingError(err error, organizationID string, details string) *StaffingError {
	return &StaffingError{
		Err:            err,
		OrganizationID: organizationID,
		Details:        details,
	}
}
