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
	feedbackResponsesTable = "feedback_responses fr"
)

type FeedbackRepository interface {
	PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.FeedbackResponse, error)
}

type feedbackRepository struct {
	conn *postgres.Connection
}

func NewFeedbackRepository(conn *postgres.Connection) FeedbackRepository {
	return &feedbackRepository{
		conn: conn,
	}
}

func (r *feedbackRepository) PageByFilter(filter *domain.RecordFilter, limit, offset int) ([]*domain.FeedbackResponse, error) {
	query, args, err := squirrel.
		Select("fr.id, fr.organization_id, fr.user_id, fr.responded_at").
		From(feedbackResponsesTable).
		Where(squirrel.Eq{"fr.organization_id": filter.OrganizationID}).
		Where(squirrel.GtOrEq{"fr.responded_at": filter.StartDate.Format(time.DateOnly)}).
		Where(squirrel.Lt{"fr.responded_at": filter.EndDate.AddDate(0, 0, 1).Format(time.DateOnly)}).
		OrderBy("fr.responded_at ASC", "fr.id ASC").
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

	responses := make([]*domain.FeedbackResponse, 0)
	for rows.Next() {
		response := &domain.FeedbackResponse{}
		err := rows.Scan(
			&response.ID,
			&response.OrganizationID,
			&response.UserID,
			&response.RespondedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resposta de feedback: %w", err)
		}
		responses = append(responses, response)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return responses, nil
}
