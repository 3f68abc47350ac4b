package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	employeesTable = "employees e"
)

type EmployeeRepository interface {
	ListByUserIDs(userIDs []int) ([]*domain.Employee, error)
}

type employeeRepository struct {
	conn *postgres.Connection
}

func NewEmployeeRepository(conn *postgres.Connection) EmployeeRepository {
	return &employeeRepository{
		conn: conn,
	}
}

func (r *employeeRepository) ListByUserIDs(userIDs []int) ([]*domain.Employee, error) {
	if len(userIDs) == 0 {
		return []*domain.Employee{}, nil
	}

	query, args, err := squirrel.
		Select("e.user_id, e.full_name, e.display_name, e.photo_url, e.active").
		From(employeesTable).
		Where(squirrel.Eq{"e.user_id": userIDs}).
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

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		employee := &domain.Employee{}
		err := rows.Scan(
			&employee.UserID,
			&employee.FullName,
			&employee.DisplayName,
			&employee.PhotoURL,
			&employee.Active,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear colaborador: %w", err)
		}
		employees = append(employees, employee)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return employees, nil
}
