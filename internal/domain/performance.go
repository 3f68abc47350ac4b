package domain

// StaffMetricAggregate é o acumulado de um profissional em uma janela.
// Toda taxa aqui é contagem/denominador e vale 0 quando o denominador é 0.
type StaffMetricAggregate struct {
	ExternalStaffID string  `json:"external_staff_id"`
	UserID          *int    `json:"user_id,omitempty"`
	DisplayName     string  `json:"display_name"`
	PhotoURL        *string `json:"photo_url,omitempty"`

	// Receita
	TotalRevenue     float64 `json:"total_revenue"`
	ServiceRevenue   float64 `json:"service_revenue"`
	ProductRevenue   float64 `json:"product_revenue"`
	TransactionCount int     `json:"transaction_count"`
	AverageTicket    float64 `json:"average_ticket"`

	// Atendimentos e taxas
	AppointmentCount       int     `json:"appointment_count"` // apenas elegíveis
	RebookCount            int     `json:"rebook_count"`
	RebookRate             float64 `json:"rebook_rate"`
	TipTotal               float64 `json:"tip_total"`
	AverageTip             float64 `json:"average_tip"`
	TippedAppointmentRate  float64 `json:"tipped_appointment_rate"`
	TipPercentOfPrice      float64 `json:"tip_percent_of_price"`
	FeedbackCount          int     `json:"feedback_count"`
	FeedbackRate           float64 `json:"feedback_rate"`
	RetentionRate          float64 `json:"retention_rate"`
	RetailAttachmentRate   float64 `json:"retail_attachment_rate"`

	// Capacidade
	BookedHours  float64 `json:"booked_hours"`
	DaysWithData int     `json:"days_with_data"`
}

// OrganizationSummary é o total consolidado da organização na janela,
// incluindo registros sem profissional atribuível
type OrganizationSummary struct {
	TotalRevenue     float64 `json:"total_revenue"`
	ServiceRevenue   float64 `json:"service_revenue"`
	ProductRevenue   float64 `json:"product_revenue"`
	TransactionCount int     `json:"transaction_count"`
	AverageTicket    float64 `json:"average_ticket"`
	AppointmentCount int     `json:"appointment_count"`
	StaffCount       int     `json:"staff_count"`
	DaysWithData     int     `json:"days_with_data"`
}

// CapacitySummary resume a utilização da capacidade instalada na janela
type CapacitySummary struct {
	AvailableHours  float64 `json:"available_hours"`
	BookedHours     float64 `json:"booked_hours"`
	UtilizationRate float64 `json:"utilization_rate"`
	GapHours        float64 `json:"gap_hours"`
	GapRevenue      float64 `json:"gap_revenue"`
}

// PerformanceTier classifica o score composto em faixas de atenção
type PerformanceTier string

const (
	TierNeedsAttention PerformanceTier = "needs_attention"
	TierWatch          PerformanceTier = "watch"
	TierStrong         PerformanceTier = "strong"
)

// CompositeScoreResult é o resultado do score composto de um profissional.
// Só existe para quem passou do mínimo de atendimentos na janela.
type CompositeScoreResult struct {
	ExternalStaffID  string          `json:"external_staff_id"`
	DisplayName      string          `json:"display_name"`
	RebookScore      float64         `json:"rebook_score"`
	TipScore         float64         `json:"tip_score"`
	RetentionScore   float64         `json:"retention_score"`
	RetailScore      float64         `json:"retail_score"`
	Composite        float64         `json:"composite"`
	Tier             PerformanceTier `json:"tier"`
	AppointmentCount int             `json:"appointment_count"`
}

// OrganizationPerformance é o resultado completo de uma chamada ao motor:
// um objeto plano e serializável, consumido pela camada de apresentação
type OrganizationPerformance struct {
	OrganizationID string                  `json:"organization_id"`
	LocationID     *string                 `json:"location_id,omitempty"`
	Window         *PeriodWindow           `json:"window"`
	Staff          []*StaffMetricAggregate `json:"staff"`
	Organization   *OrganizationSummary    `json:"organization"`
	Capacity       *CapacitySummary        `json:"capacity,omitempty"`
	Scorecard      []*CompositeScoreResult `json:"scorecard,omitempty"`
	Trends         []*ThresholdEvaluation  `json:"trends,omitempty"`
}
