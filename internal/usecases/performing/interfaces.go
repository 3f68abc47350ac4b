package performing

import (
	"time"

	"github.com/vfg2006/salon-ops-api/internal/domain"
)

// Filters é o recorte pedido pela camada de apresentação: unidade opcional
// e período, por seletor nomeado ou por datas explícitas
type Filters struct {
	LocationID *string
	Selector   domain.RangeSelector
	From       *time.Time
	To         *time.Time
	// Reference ancora os seletores relativos; zero usa a data atual
	Reference time.Time
}

// Insighter é o motor de performance da organização
type Insighter interface {
	// GetOrganizationPerformance monta o quadro completo da janela: métricas
	// por profissional, totais da organização, capacidade, scorecard e
	// tendências contra o período anterior
	GetOrganizationPerformance(organizationID string, filters *Filters) (*domain.OrganizationPerformance, error)

	// GetTeamScorecard retorna apenas o score composto da equipe, ordenado
	// do pior para o melhor
	GetTeamScorecard(organizationID string, filters *Filters) ([]*domain.CompositeScoreResult, error)

	// GetCapacityUtilization retorna apenas o resumo de capacidade da janela
	GetCapacityUtilization(organizationID string, filters *Filters) (*domain.CapacitySummary, error)

	// GetThresholdAlerts retorna as avaliações de tendência e mínimo da janela
	GetThresholdAlerts(organizationID string, filters *Filters) ([]*domain.ThresholdEvaluation, error)

	// GetDailySeries retorna a série diária consolidada pelo job de
	// sincronização, para gráficos históricos sem reprocessar registros brutos
	GetDailySeries(organizationID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error)

	// BuildDailySnapshot reduz os registros brutos de um único dia ao
	// agregado persistido pelo job de consolidação
	BuildDailySnapshot(organizationID string, date time.Time) (*domain.PerformanceSnapshot, error)

	// GetThresholdPolicy retorna a política de alerta da organização, com os
	// padrões de configuração aplicados quando ainda não houver uma salva
	GetThresholdPolicy(organizationID string) (*domain.ThresholdPolicy, error)

	// SaveThresholdPolicy valida e persiste a política de alerta
	SaveThresholdPolicy(policy *domain.ThresholdPolicy) error
}
