package staffing

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

// Resolver monta o diretório bidirecional de identidades da equipe usado
// para atribuir cada registro bruto a uma pessoa
type Resolver interface {
	// ResolveAll reconstrói o diretório a partir das linhas atuais de
	// mapeamento. Sempre fresco: nada é cacheado entre chamadas.
	ResolveAll(organizationID string) (*domain.StaffDirectory, error)
}

type Service struct {
	staffMappingRepo repository.StaffMappingRepository
	employeeRepo     repository.EmployeeRepository
}

func NewService(
	staffMappingRepo repository.StaffMappingRepository,
	employeeRepo repository.EmployeeRepository,
) Resolver {
	return &Service{
		staffMappingRepo: staffMappingRepo,
		employeeRepo:     employeeRepo,
	}
}

func (s *Service) ResolveAll(organizationID string) (*domain.StaffDirectory, error) {
	mappings, err := s.staffMappingRepo.ListByOrganization(organizationID)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"organization_id": organizationID,
		}).Error("Erro ao buscar mapeamentos de profissionais")
		return nil, NewStaffingError(ErrMappingSource, organizationID, err.Error())
	}

	// Coletar os IDs de usuário presentes no mapeamento para buscar o
	// diretório de colaboradores em uma única consulta
	userIDs := make([]int, 0, len(mappings))
	for _, mapping := range mappings {
		if mapping.InternalUserID != nil {
			userIDs = append(userIDs, *mapping.InternalUserID)
		}
	}

	employees, err := s.employeeRepo.ListByUserIDs(userIDs)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"organization_id": organizationID,
		}).Error("Erro ao buscar diretório de colaboradores")
		return nil, NewStaffingError(ErrEmployeeSource, organizationID, err.Error())
	}

	employeesByID := make(map[int]*domain.Employee, len(employees))
	for _, employee := range employees {
		employeesByID[employee.UserID] = employee
	}

	directory := domain.NewStaffDirectory()
	for _, mapping := range mappings {
		identity := &domain.StaffIdentity{
			ExternalID: mapping.ExternalStaffID,
			UserID:     mapping.InternalUserID,
		}

		var employee *domain.Employee
		if mapping.InternalUserID != nil {
			employee = employeesByID[*mapping.InternalUserID]
		}

		identity.DisplayName = resolveDisplayName(employee, mapping)
		if employee != nil {
			identity.PhotoURL = employee.PhotoURL
		}

		directory.Add(identity)
	}

	logrus.WithFields(logrus.Fields{
		"organization_id": organizationID,
		"staff_count":     len(directory.ByExternalID),
	}).Debug("Diretório de equipe resolvido")

	return directory, nil
}

// resolveDisplayName aplica a ordem de precedência do nome de exibição:
// display name do diretório, depois nome completo, depois o nome vindo do
// PDV e, por fim, o placeholder. Nunca fica em branco.
func resolveDisplayName(employee *domain.Employee, mapping *domain.StaffMapping) string {
	if employee != nil {
		if employee.DisplayName != nil && strings.TrimSpace(*employee.DisplayName) != "" {
			return *employee.DisplayName
		}
		if employee.FullName != nil && strings.TrimSpace(*employee.FullName) != "" {
			return *employee.FullName
		}
	}

	if mapping.ExternalStaffName != nil && strings.TrimSpace(*mapping.ExternalStaffName) != "" {
		return *mapping.ExternalStaffName
	}

	return domain.UnknownStaffName
}
