package performing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

func TestPesosDoScoreSomamUm(t *testing.T) {
	assert.InDelta(t, 1.0, weightRebook+weightTip+weightRetention+weightRetail, 1e-9)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		name      string
		composite float64
		expected  domain.PerformanceTier
	}{
		{name: "Zero cai em atenção", composite: 0, expected: domain.TierNeedsAttention},
		{name: "Logo abaixo do corte de 50", composite: 49.99, expected: domain.TierNeedsAttention},
		{name: "Exatamente 50 entra em observação", composite: 50, expected: domain.TierWatch},
		{name: "Logo abaixo do corte de 70", composite: 69.99, expected: domain.TierWatch},
		{name: "Exatamente 70 entra em forte", composite: 70, expected: domain.TierStrong},
		{name: "Score máximo", composite: 100, expected: domain.TierStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tierFor(tt.composite))
		})
	}
}

func TestTipScore(t *testing.T) {
	tests := []struct {
		name              string
		tipPercentOfPrice float64
		expected          float64
	}{
		{name: "Gorjeta de 10% do preço vale 40 pontos", tipPercentOfPrice: 10, expected: 40},
		{name: "No teto de excelência vale 100", tipPercentOfPrice: 25, expected: 100},
		{name: "Acima do teto satura em 100", tipPercentOfPrice: 40, expected: 100},
		{name: "Sem gorjeta vale zero", tipPercentOfPrice: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tipScore(tt.tipPercentOfPrice))
		})
	}
}

func TestBuildScorecard(t *testing.T) {
	tests := []struct {
		name       string
		aggregates []*domain.StaffMetricAggregate
		validate   func(t *testing.T, scorecard []*domain.CompositeScoreResult)
	}{
		{
			name: "Profissional abaixo da amostra mínima fica fora do scorecard",
			aggregates: []*domain.StaffMetricAggregate{
				{ExternalStaffID: "S1", DisplayName: "Ana", AppointmentCount: 4, RebookRate: 100},
				{ExternalStaffID: "S2", DisplayName: "Bruna", AppointmentCount: 5, RebookRate: 100},
			},
			validate: func(t *testing.T, scorecard []*domain.CompositeScoreResult) {
				assert.Len(t, scorecard, 1)
				assert.Equal(t, "S2", scorecard[0].ExternalStaffID)
			},
		},
		{
			name: "Composto pondera os quatro componentes",
			aggregates: []*domain.StaffMetricAggregate{
				{
					ExternalStaffID:      "S1",
					DisplayName:          "Ana",
					AppointmentCount:     10,
					RebookRate:           40,                // 40 * 0.35 = 14
					TipPercentOfPrice:    10,                // score 40 * 0.30 = 12
					RetentionRate:        50,                // 50 * 0.20 = 10
					RetailAttachmentRate: 20,                // 20 * 0.15 = 3
				},
			},
			validate: func(t *testing.T, scorecard []*domain.CompositeScoreResult) {
				assert.Len(t, scorecard, 1)
				assert.Equal(t, 40.0, scorecard[0].RebookScore)
				assert.Equal(t, 40.0, scorecard[0].TipScore)
				assert.Equal(t, 50.0, scorecard[0].RetentionScore)
				assert.Equal(t, 20.0, scorecard[0].RetailScore)
				assert.Equal(t, 39.0, scorecard[0].Composite)
				assert.Equal(t, domain.TierNeedsAttention, scorecard[0].Tier)
			},
		},
		{
			name: "Scorecard sai ordenado do pior para o melhor",
			aggregates: []*domain.StaffMetricAggregate{
				{ExternalStaffID: "S1", DisplayName: "Ana", AppointmentCount: 8, RebookRate: 90, TipPercentOfPrice: 25, RetentionRate: 80, RetailAttachmentRate: 60},
				{ExternalStaffID: "S2", DisplayName: "Bruna", AppointmentCount: 8, RebookRate: 10, RetentionRate: 50},
				{ExternalStaffID: "S3", DisplayName: "Carla", AppointmentCount: 8, RebookRate: 55, TipPercentOfPrice: 12, RetentionRate: 60, RetailAttachmentRate: 30},
			},
			validate: func(t *testing.T, scorecard []*domain.CompositeScoreResult) {
				assert.Len(t, scorecard, 3)
				assert.Equal(t, "S2", scorecard[0].ExternalStaffID)
				assert.Equal(t, "S3", scorecard[1].ExternalStaffID)
				assert.Equal(t, "S1", scorecard[2].ExternalStaffID)
				assert.True(t, scorecard[0].Composite <= scorecard[1].Composite)
				assert.True(t, scorecard[1].Composite <= scorecard[2].Composite)
			},
		},
		{
			name: "Empate no composto desempata pelo nome",
			aggregates: []*domain.StaffMetricAggregate{
				{ExternalStaffID: "S2", DisplayName: "Bruna", AppointmentCount: 6, RetentionRate: 50},
				{ExternalStaffID: "S1", DisplayName: "Ana", AppointmentCount: 6, RetentionRate: 50},
			},
			validate: func(t *testing.T, scorecard []*domain.CompositeScoreResult) {
				assert.Len(t, scorecard, 2)
				assert.Equal(t, "Ana", scorecard[0].DisplayName)
				assert.Equal(t, "Bruna", scorecard[1].DisplayName)
			},
		},
		{
			name:       "Sem profissionais o scorecard sai vazio",
			aggregates: nil,
			validate: func(t *testing.T, scorecard []*domain.CompositeScoreResult) {
				assert.Empty(t, scorecard)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, buildScorecard(tt.aggregates))
		})
	}
}
