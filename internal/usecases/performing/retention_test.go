package performing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

func TestAggregateRetention(t *testing.T) {
	week := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	rows := []*domain.WeeklyPerformance{
		{ExternalStaffID: "S1", WeekStart: week, RetentionRate: 60},
		{ExternalStaffID: "S1", WeekStart: week.AddDate(0, 0, 7), RetentionRate: 70},
		{ExternalStaffID: "S1", WeekStart: week.AddDate(0, 0, 14), RetentionRate: 65},
		{ExternalStaffID: "S2", WeekStart: week, RetentionRate: 40},
		{ExternalStaffID: "", WeekStart: week, RetentionRate: 90}, // linha órfã é descartada
	}

	byStaff := aggregateRetention(rows)

	assert.Len(t, byStaff, 2)
	assert.Equal(t, 3, byStaff["S1"].WeekCount)
	assert.Equal(t, 65.0, retentionRateFor(byStaff, "S1"))
	assert.Equal(t, 40.0, retentionRateFor(byStaff, "S2"))
}

func TestRetentionRateForSemHistoricoUsaNeutro(t *testing.T) {
	byStaff := aggregateRetention(nil)

	// Profissional novo sem nenhuma semana registrada fica no valor neutro
	assert.Equal(t, defaultRetentionRate, retentionRateFor(byStaff, "S9"))
	assert.Equal(t, 50.0, defaultRetentionRate)
}
