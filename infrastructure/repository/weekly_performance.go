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
	weeklyPerformanceTable = "weekly_performance_metrics wp"
)

type WeeklyPerformanceRepository interface {
	// PageByFilter busca as linhas semanais cuja semana intersecta a
	// janela: semanas começando até 6 dias antes do início ainda contam
	PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.WeeklyPerformance, error)
}

type weeklyPerformanceRepository struct {
	conn *postgres.Connection
}

func NewWeeklyPerformanceRepository(conn *postgres.Connection) WeeklyPerformanceRepository {
	return &weeklyPerformanceRepository{
		conn: conn,
	}
}

func (r *weeklyPerformanceRepository) PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.WeeklyPerformance, error) {
	intersectionStart := filter.StartDate.AddDate(0, 0, -6)

	query, args, err := squirrel.
		Select("wp.id, wp.organization_id, wp.external_staff_id, wp.week_start, wp.retention_rate").
		From(weeklyPerformanceTable).
		Where(squirrel.Eq{"wp.organization_id": filter.OrganizationID}).
		Where(squirrel.GtOrEq{"wp.week_start": intersectionStart.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"wp.week_start": filter.EndDate.Format(time.DateOnly)}).
		OrderBy("wp.week_start ASC", "wp.id ASC").
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

	metrics := make([]*domain.WeeklyPerformance, 0)
	for rows.Next() {
		metric := &domain.WeeklyPerformance{}
		err := rows.Scan(
			&metric.ID,
			&metric.OrganizationID,
			&metric.ExternalStaffID,
			&metric.WeekStart,
			&metric.RetentionRate,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica semanal: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
