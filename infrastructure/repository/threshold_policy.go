package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

const (
	thresholdPoliciesTable = "threshold_policies tp"
)

type ThresholdPolicyRepository interface {
	// GetByOrganization retorna a política da organização, ou nil quando
	// ainda não configurada (o chamador aplica os padrões)
	GetByOrganization(organizationID string) (*domain.ThresholdPolicy, error)
	SaveOrUpdate(policy *domain.ThresholdPolicy) error
}

type thresholdPolicyRepository struct {
	conn *postgres.Connection
}

func NewThresholdPolicyRepository(conn *postgres.Connection) ThresholdPolicyRepository {
	return &thresholdPolicyRepository{
		conn: conn,
	}
}

func (r *thresholdPolicyRepository) GetByOrganization(organizationID string) (*domain.ThresholdPolicy, error) {
	query, args, err := squirrel.
		Select("tp.organization_id, tp.minimum_revenue, tp.evaluation_period_days, tp.alerts_enabled").
		From(thresholdPoliciesTable).
		Where(squirrel.Eq{"tp.organization_id": organizationID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	policy := &domain.ThresholdPolicy{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&policy.OrganizationID,
		&policy.MinimumRevenue,
		&policy.EvaluationPeriodDays,
		&policy.AlertsEnabled,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear política de alerta: %w", err)
	}

	return policy, nil
}

func (r *thresholdPolicyRepository) SaveOrUpdate(policy *domain.ThresholdPolicy) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("threshold_policies").
		Columns("organization_id", "minimum_revenue", "evaluation_period_days", "alerts_enabled").
		Values(
			policy.OrganizationID,
			policy.MinimumRevenue,
			policy.EvaluationPeriodDays,
			policy.AlertsEnabled,
		).
		Suffix(`
			ON CONFLICT (organization_id) DO UPDATE SET
				minimum_revenue = EXCLUDED.minimum_revenue,
				evaluation_period_days = EXCLUDED.evaluation_period_days,
				alerts_enabled = EXCLUDED.alerts_enabled,
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
