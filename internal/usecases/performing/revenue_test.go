package performing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

func makeSale(staffID *string, date time.Time, service, product float64) *domain.Sale {
	return &domain.Sale{
		ID:              "sale-" + date.Format("20060102150405.000"),
		OrganizationID:  "ORG1",
		ExternalStaffID: staffID,
		Date:            date,
		ServiceAmount:   service,
		ProductAmount:   product,
		TotalAmount:     service + product,
		Status:          domain.EngagementStatusCompleted,
	}
}

func TestAggregateRevenue(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		sales    []*domain.Sale
		validate func(t *testing.T, rollup *revenueRollup)
	}{
		{
			name: "Totais por profissional e da organização",
			sales: []*domain.Sale{
				makeSale(stringPtr("S1"), day, 100, 30),
				makeSale(stringPtr("S1"), day.AddDate(0, 0, 1), 80, 0),
				makeSale(stringPtr("S2"), day, 60, 0),
			},
			validate: func(t *testing.T, rollup *revenueRollup) {
				assert.Equal(t, 270.0, rollup.Total)
				assert.Equal(t, 240.0, rollup.ServiceTotal)
				assert.Equal(t, 30.0, rollup.ProductTotal)
				assert.Equal(t, 3, rollup.SaleCount)
				assert.Equal(t, 90.0, rollup.AverageTicket())

				assert.Equal(t, 210.0, rollup.ByStaff["S1"].Total)
				assert.Equal(t, 2, rollup.ByStaff["S1"].TransactionCount)
				assert.Equal(t, 60.0, rollup.ByStaff["S2"].Total)
			},
		},
		{
			name: "Venda sem profissional entra só no total da organização",
			sales: []*domain.Sale{
				makeSale(nil, day, 50, 0),
				makeSale(stringPtr(""), day, 40, 0),
				makeSale(stringPtr("S1"), day, 100, 0),
			},
			validate: func(t *testing.T, rollup *revenueRollup) {
				assert.Equal(t, 190.0, rollup.Total)
				assert.Len(t, rollup.ByStaff, 1)
				assert.Equal(t, 90.0, rollup.Unattributed.Total)
				assert.Equal(t, 2, rollup.Unattributed.TransactionCount)
			},
		},
		{
			name: "Attachment de varejo é a fatia do faturamento vinda de produto",
			sales: []*domain.Sale{
				// R$10 de produto sobre R$100 transacionados: 10%, não 100%
				makeSale(stringPtr("S1"), day, 90, 10),
			},
			validate: func(t *testing.T, rollup *revenueRollup) {
				assert.Equal(t, 10.0, rollup.ByStaff["S1"].RetailAttachmentRate())
			},
		},
		{
			name: "Attachment de varejo soma o produto de todas as transações",
			sales: []*domain.Sale{
				makeSale(stringPtr("S1"), day, 75, 25),
				makeSale(stringPtr("S1"), day, 80, 0),
				makeSale(stringPtr("S1"), day, 60, 15),
				makeSale(stringPtr("S1"), day, 145, 0),
			},
			validate: func(t *testing.T, rollup *revenueRollup) {
				totals := rollup.ByStaff["S1"]
				assert.Equal(t, 40.0, totals.ProductTotal)
				assert.Equal(t, 400.0, totals.Total)
				assert.Equal(t, 10.0, totals.RetailAttachmentRate())
			},
		},
		{
			name: "Venda cancelada fica fora de tudo",
			sales: func() []*domain.Sale {
				cancelled := makeSale(stringPtr("S1"), day, 100, 0)
				cancelled.Status = domain.EngagementStatusCancelled
				return []*domain.Sale{cancelled, makeSale(stringPtr("S1"), day, 70, 0)}
			}(),
			validate: func(t *testing.T, rollup *revenueRollup) {
				assert.Equal(t, 70.0, rollup.Total)
				assert.Equal(t, 1, rollup.SaleCount)
			},
		},
		{
			name:  "Sem vendas o ticket médio é zero, nunca NaN",
			sales: nil,
			validate: func(t *testing.T, rollup *revenueRollup) {
				assert.Equal(t, 0.0, rollup.AverageTicket())
				assert.Equal(t, 0.0, rollup.Unattributed.RetailAttachmentRate())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, aggregateRevenue(tt.sales))
		})
	}
}
