package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	locationsTable = "locations l"
)

type LocationRepository interface {
	ListByOrganization(organizationID string, locationID *string) ([]*domain.Location, error)
	// ListOrganizationIDs retorna as organizações com ao menos uma unidade
	// ativa, que é o universo do job de consolidação diária
	ListOrganizationIDs() ([]string, error)
}

type locationRepository struct {
	conn *postgres.Connection
}

func NewLocationRepository(conn *postgres.Connection) LocationRepository {
	return &locationRepository{
		conn: conn,
	}
}

// weekdayHoursRow é o formato persistido da tabela de horários: JSONB
// chaveado pelo nome do dia em minúsculas, como o app de cadastro grava
type weekdayHoursRow map[string]domain.DayHours

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func (r *locationRepository) ListByOrganization(organizationID string, locationID *string) ([]*domain.Location, error) {
	builder := squirrel.
		Select("l.id, l.organization_id, l.name, l.weekday_hours, l.stylist_capacity, l.active").
		From(locationsTable).
		Where(squirrel.Eq{"l.organization_id": organizationID, "l.active": true})

	if locationID != nil {
		builder = builder.Where(squirrel.Eq{"l.id": *locationID})
	}

	query, args, err := builder.
		OrderBy("l.name ASC").
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

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location, err := r.scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear unidade: %w", err)
		}
		locations = append(locations, location)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return locations, nil
}

func (r *locationRepository) ListOrganizationIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("DISTINCT l.organization_id").
		From(locationsTable).
		Where(squirrel.Eq{"l.active": true}).
		OrderBy("l.organization_id ASC").
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

	organizationIDs := make([]string, 0)
	for rows.Next() {
		var organizationID string
		if err := rows.Scan(&organizationID); err != nil {
			return nil, fmt.Errorf("erro ao escanear organização: %w", err)
		}
		organizationIDs = append(organizationIDs, organizationID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return organizationIDs, nil
}

func (r *locationRepository) scanLocation(rows *sql.Rows) (*domain.Location, error) {
	location := &domain.Location{}
	var hoursJSON []byte

	err := rows.Scan(
		&location.ID,
		&location.OrganizationID,
		&location.Name,
		&hoursJSON,
		&location.StylistCapacity,
		&location.Active,
	)
	if err != nil {
		return nil, err
	}

	location.WeekdayHours = make(map[time.Weekday]domain.DayHours)
	if hoursJSON != nil {
		raw := weekdayHoursRow{}
		if err := json.Unmarshal(hoursJSON, &raw); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de weekday_hours: %w", err)
		}

		for name, hours := range raw {
			weekday, ok := weekdayNames[name]
			if !ok {
				// Chave fora do padrão é ignorada, não derruba a leitura
				continue
			}
			location.WeekdayHours[weekday] = hours
		}
	}

	return location, nil
}
