package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	staffMappingsTable = "staff_mappings sm"
)

type StaffMappingRepository interface {
	ListByOrganization(organizationID string) ([]*domain.StaffMapping, error)
}

type staffMappingRepository struct {
	conn *postgres.Connection
}

func NewStaffMappingRepository(conn *postgres.Connection) StaffMappingRepository {
	return &staffMappingRepository{
		conn: conn,
	}
}

func (r *staffMappingRepository) ListByOrganization(organizationID string) ([]*domain.StaffMapping, error) {
	query, args, err := squirrel.
		Select("sm.external_staff_id, sm.organization_id, sm.internal_user_id, sm.external_staff_name").
		From(staffMappingsTable).
		Where(squirrel.Eq{"sm.organization_id": organizationID}).
		OrderBy("sm.external_staff_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	mappings := make([]*domain.StaffMapping, 0)
	for rows.Next() {
		mapping := &domain.StaffMapping{}
		err := rows.Scan(
			&mapping.ExternalStaffID,
			&mapping.OrganizationID,
			&mapping.InternalUserID,
			&mapping.ExternalStaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear mapeamento de profissional: %w", err)
		}
		mappings = append(mappings, mapping)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return mappings, nil
}
