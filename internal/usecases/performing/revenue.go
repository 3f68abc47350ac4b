package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// revenueTotals acumula os valores de venda por profissional
type revenueTotals struct {
	Total            float64
	ServiceTotal     float64
	ProductTotal     float64
	TransactionCount int
}

// revenueRollup é o resultado da redução das vendas do período
type revenueRollup struct {
	ByStaff      map[string]*revenueTotals
	Unattributed *revenueTotals
	Total        float64
	ServiceTotal float64
	ProductTotal float64
	SaleCount    int
	Dates        map[string]struct{}
}

// aggregateRevenue reduz as vendas brutas do período em totais por
// profissional. Vendas canceladas ou com no-show ficam de fora; vendas
// sem profissional associado entram apenas nos totais da organização.
func aggregateRevenue(sales []*domain.Sale) *revenueRollup {
	rollup := &revenueRollup{
		ByStaff:      make(map[string]*revenueTotals),
		Unattributed: &revenueTotals{},
		Dates:        make(map[string]struct{}),
	}

	for _, sale := range sales {
		if !sale.Status.Eligible() {
			continue
		}

		totals := rollup.Unattributed
		if sale.ExternalStaffID != nil && *sale.ExternalStaffID != "" {
			staffID := *sale.ExternalStaffID
			if _, ok := rollup.ByStaff[staffID]; !ok {
				rollup.ByStaff[staffID] = &revenueTotals{}
			}
			totals = rollup.ByStaff[staffID]
		}

		totals.Total += sale.TotalAmount
		totals.ServiceTotal += sale.ServiceAmount
		totals.ProductTotal += sale.ProductAmount
		totals.TransactionCount++

		rollup.Total += sale.TotalAmount
		rollup.ServiceTotal += sale.ServiceAmount
		rollup.ProductTotal += sale.ProductAmount
		rollup.SaleCount++

		if !sale.Date.IsZero() {
			rollup.Dates[sale.Date.Format("2006-01-02")] = struct{}{}
		}
	}

	return rollup
}

// AverageTicket calcula o ticket médio do período
func (r *revenueRollup) AverageTicket() float64 {
	return utils.Ratio(r.Total, float64(r.SaleCount))
}

// RetailAttachmentRate calcula o percentual do faturamento do profissional
// que veio de produtos de revenda, sobre o total transacionado
func (t *revenueTotals) RetailAttachmentRate() float64 {
	return utils.RoundWithTwoDecimalPlace(utils.Ratio(t.ProductTotal, t.Total) * 100)
}
