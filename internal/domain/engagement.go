package domain

import "time"

// EngagementStatus representa o status de um atendimento ou venda vindo do PDV
type EngagementStatus string

const (
	EngagementStatusCompleted EngagementStatus = "completed"
	EngagementStatusConfirmed EngagementStatus = "confirmed"
	EngagementStatusCancelled EngagementStatus = "cancelled"
	EngagementStatusNoShow    EngagementStatus = "no_show"
)

// ExcludedStatuses são os status que nunca entram em receita nem em
// denominadores de taxas (a menos que a métrica estude cancelamento)
var ExcludedStatuses = []EngagementStatus{
	EngagementStatusCancelled,
	EngagementStatusNoShow,
}

// Eligible indica se o registro conta para receita e taxas
func (s EngagementStatus) Eligible() bool {
	return s != EngagementStatusCancelled && s != EngagementStatusNoShow
}

// Appointment é um atendimento agendado no salão, como veio do PDV.
// Registro bruto: o motor de métricas nunca o altera.
type Appointment struct {
	ID              string           `json:"id"`
	OrganizationID  string           `json:"organization_id"`
	LocationID      *string          `json:"location_id"`
	ExternalStaffID *string          `json:"external_staff_id"`
	Date            time.Time        `json:"date"`
	StartTime       *string          `json:"start_time"` // formato "HH:MM"
	EndTime         *string          `json:"end_time"`
	Price           float64          `json:"price"`
	TipAmount       *float64         `json:"tip_amount"`
	Rebooked        *bool            `json:"rebooked"`
	Status          EngagementStatus `json:"status"`
}

// defaultAppointmentHours é a duração assumida quando o atendimento não tem
// horários válidos registrados no PDV
const defaultAppointmentHours = 1.0

// DurationHours calcula a duração do atendimento em horas a partir dos
// horários de início e fim. Durações ausentes ou não positivas caem no
// padrão de 1 hora.
func (a *Appointment) DurationHours() float64 {
	if a.StartTime == nil || a.EndTime == nil {
		return defaultAppointmentHours
	}

	start, errStart := time.Parse("15:04", *a.StartTime)
	end, errEnd := time.Parse("15:04", *a.EndTime)
	if errStart != nil || errEnd != nil {
		return defaultAppointmentHours
	}

	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return defaultAppointmentHours
	}

	return hours
}

// Sale é uma transação fechada no caixa, com a separação entre
// serviços e produtos usada no cálculo de attachment de varejo
type Sale struct {
	ID              string           `json:"id"`
	OrganizationID  string           `json:"organization_id"`
	LocationID      *string          `json:"location_id"`
	ExternalStaffID *string          `json:"external_staff_id"`
	Date            time.Time        `json:"date"`
	ServiceAmount   float64          `json:"service_amount"`
	ProductAmount   float64          `json:"product_amount"`
	TotalAmount     float64          `json:"total_amount"`
	Status          EngagementStatus `json:"status"`
}

// FeedbackResponse é uma resposta de pesquisa de satisfação. Vem chaveada
// pelo ID de usuário da plataforma, não pelo ID do PDV, por isso a
// atribuição passa pelo índice reverso do diretório de equipe.
type FeedbackResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         int       `json:"user_id"`
	RespondedAt    time.Time `json:"responded_at"`
}

// WeeklyPerformance é uma linha pré-calculada de retenção semanal por
// profissional, produzida fora deste motor
type WeeklyPerformance struct {
	ID              string    `json:"id"`
	OrganizationID  string    `json:"organization_id"`
	ExternalStaffID string    `json:"external_staff_id"`
	WeekStart       time.Time `json:"week_start"`
	RetentionRate   float64   `json:"retention_rate"`
}

// RecordFilter descreve o recorte de registros brutos para uma busca
// paginada: intervalo de datas, unidade opcional e status excluídos
type RecordFilter struct {
	OrganizationID  string
	LocationID      *string
	StartDate       time.Time
	EndDate         time.Time
	ExcludeStatuses []EngagementStatus
}
