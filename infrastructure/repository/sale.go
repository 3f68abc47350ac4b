package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	salesTable = "sales s"
)

type SaleRepository interface {
	PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.Sale, error) {
	builder := squirrel.
		Select("s.id, s.organization_id, s.location_id, s.external_staff_id, s.date, s.service_amount, s.product_amount, s.total_amount, s.status").
		From(salesTable).
		Where(squirrel.Eq{"s.organization_id": filter.OrganizationID}).
		Where(squirrel.GtOrEq{"s.date": filter.StartDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"s.date": filter.EndDate.Format(time.DateOnly)})

	if filter.LocationID != nil {
		builder = builder.Where(squirrel.Eq{"s.location_id": *filter.LocationID})
	}

	if len(filter.ExcludeStatuses) > 0 {
		builder = builder.Where(squirrel.NotEq{"s.status": filter.ExcludeStatuses})
	}

	query, args, err := builder.
		OrderBy("s.date ASC", "s.id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale := &domain.Sale{}
		err := rows.Scan(
			&sale.ID,
			&sale.OrganizationID,
			&sale.LocationID,
			&sale.ExternalStaffID,
			&sale.Date,
			&sale.ServiceAmount,
			&sale.ProductAmount,
			&sale.TotalAmount,
			&sale.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}
