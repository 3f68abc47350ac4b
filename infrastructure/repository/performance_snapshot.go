package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	performanceSnapshotsTable = "performance_snapshots ps"
)

type PerformanceSnapshotRepository interface {
	SaveOrUpdate(snapshot *domain.PerformanceSnapshot) error
	GetByDateRange(organizationID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error)
	DeleteOlderThan(days int) (int64, error)
}

type performanceSnapshotRepository struct {
	conn *postgres.Connection
}

func NewPerformanceSnapshotRepository(conn *postgres.Connection) PerformanceSnapshotRepository {
	return &performanceSnapshotRepository{
		conn: conn,
	}
}

func (r *performanceSnapshotRepository) SaveOrUpdate(snapshot *domain.PerformanceSnapshot) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("performance_snapshots").
		Columns("id", "organization_id", "date", "total_revenue", "transaction_count", "appointment_count", "booked_hours").
		Values(
			snapshot.ID,
			snapshot.OrganizationID,
			snapshot.Date.Format(time.DateOnly),
			snapshot.TotalRevenue,
			snapshot.TransactionCount,
			snapshot.AppointmentCount,
			snapshot.BookedHours,
		).
		Suffix(`
			ON CONFLICT (organization_id, date) DO UPDATE SET
				total_revenue = EXCLUDED.total_revenue,
				transaction_count = EXCLUDED.transaction_count,
				appointment_count = EXCLUDED.appointment_count,
				booked_hours = EXCLUDED.booked_hours,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *performanceSnapshotRepository) GetByDateRange(organizationID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error) {
	query, args, err := squirrel.
		Select("ps.id, ps.organization_id, ps.date, ps.total_revenue, ps.transaction_count, ps.appointment_count, ps.booked_hours, ps.created_at, ps.updated_at").
		From(performanceSnapshotsTable).
		Where(squirrel.Eq{"ps.organization_id": organizationID}).
		Where(squirrel.GtOrEq{"ps.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ps.date": endDate.Format(time.DateOnly)}).
		OrderBy("ps.date ASC").
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

	snapshots := make([]*domain.PerformanceSnapshot, 0)
	for rows.Next() {
		snapshot := &domain.PerformanceSnapshot{}
		err := rows.Scan(
			&snapshot.ID,
			&snapshot.OrganizationID,
			&snapshot.Date,
			&snapshot.TotalRevenue,
			&snapshot.TransactionCount,
			&snapshot.AppointmentCount,
			&snapshot.BookedHours,
			&snapshot.CreatedAt,
			&snapshot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *performanceSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("performance_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}
