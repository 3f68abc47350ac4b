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
	appointmentsTable = "appointments a"
)

type AppointmentRepository interface {
	// PageByFilter busca uma página de atendimentos do recorte. A ordem é
	// a do banco; quem precisa do período completo usa o fetcher paginado.
	PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.Appointment, error)
}

type appointmentRepository struct {
	conn *postgres.Connection
}

func NewAppointmentRepository(conn *postgres.Connection) AppointmentRepository {
	return &appointmentRepository{
		conn: conn,
	}
}

func (r *appointmentRepository) PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.Appointment, error) {
	builder := squirrel.
		Select("a.id, a.organization_id, a.location_id, a.external_staff_id, a.date, a.start_time, a.end_time, a.price, a.tip_amount, a.rebooked, a.status").
		From(appointmentsTable).
		Where(squirrel.Eq{"a.organization_id": filter.OrganizationID}).
		Where(squirrel.GtOrEq{"a.date": filter.StartDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"a.date": filter.EndDate.Format(time.DateOnly)})

	if filter.LocationID != nil {
		builder = builder.Where(squirrel.Eq{"a.location_id": *filter.LocationID})
	}

	if len(filter.ExcludeStatuses) > 0 {
		builder = builder.Where(squirrel.NotEq{"a.status": filter.ExcludeStatuses})
	}

	query, args, err := builder.
		OrderBy("a.date ASC", "a.id ASC").
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

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appointment, err := r.scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atendimento: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return appointments, nil
}

func (r *appointmentRepository) scanAppointment(rows *sql.Rows) (*domain.Appointment, error) {
	appointment := &domain.Appointment{}

	err := rows.Scan(
		&appointment.ID,
		&appointment.OrganizationID,
		&appointment.LocationID,
		&appointment.ExternalStaffID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Price,
		&appointment.TipAmount,
		&appointment.Rebooked,
		&appointment.Status,
	)
	if err != nil {
		return nil, err
	}

	return appointment, nil
}
