package domain

import "time"

// ThresholdPolicy é a política de alerta de performance de uma organização.
// Passada explicitamente ao avaliador como objeto de valor; não existe
// configuração ambiente/global para isso.
type ThresholdPolicy struct {
	OrganizationID       string  `json:"organization_id"`
	MinimumRevenue       float64 `json:"minimum_revenue"`
	EvaluationPeriodDays int     `json:"evaluation_period_days"` // 30, 60 ou 90
	AlertsEnabled        bool    `json:"alerts_enabled"`
}

// ThresholdEvaluation compara o valor atual de uma métrica com o período
// anterior e com o mínimo configurado. PercentChange é nil quando o valor
// anterior é zero: variação indefinida, nunca ±infinito.
type ThresholdEvaluation struct {
	Metric          string   `json:"metric"`
	ExternalStaffID *string  `json:"external_staff_id,omitempty"`
	CurrentValue    float64  `json:"current_value"`
	PriorValue      float64  `json:"prior_value"`
	PercentChange   *float64 `json:"percent_change"`
	DaysWithData    int      `json:"days_with_data"`
	ProratedMinimum float64  `json:"prorated_minimum"`
	BelowMinimum    bool     `json:"below_minimum"`
}

// PerformanceSnapshot é o agregado diário persistido pelo job de
// sincronização para alimentar séries históricas baratas nos dashboards
type PerformanceSnapshot struct {
	ID               string    `json:"id"`
	OrganizationID   string    `json:"organization_id"`
	Date             time.Time `json:"date"`
	TotalRevenue     float64   `json:"total_revenue"`
	TransactionCount int       `json:"transaction_count"`
	AppointmentCount int       `json:"appointment_count"`
	BookedHours      float64   `json:"booked_hours"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
