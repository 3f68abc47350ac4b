package performing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	staffingmocks "github.com/vfg2006/salon-ops-api/internal/usecases/staffing/mocks"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	appointmentRepo *mocks.MockAppointmentRepository
	saleRepo        *mocks.MockSaleRepository
	feedbackRepo    *mocks.MockFeedbackRepository
	weeklyRepo      *mocks.MockWeeklyPerformanceRepository
	locationRepo    *mocks.MockLocationRepository
	policyRepo      *mocks.MockThresholdPolicyRepository
	snapshotRepo    *mocks.MockPerformanceSnapshotRepository
	staffResolver   *staffingmocks.MockResolver
}

func newServiceWithMocks(ctrl *gomock.Controller) (Insighter, *serviceMocks) {
	m := &serviceMocks{
		appointmentRepo: mocks.NewMockAppointmentRepository(ctrl),
		saleRepo:        mocks.NewMockSaleRepository(ctrl),
		feedbackRepo:    mocks.NewMockFeedbackRepository(ctrl),
		weeklyRepo:      mocks.NewMockWeeklyPerformanceRepository(ctrl),
		locationRepo:    mocks.NewMockLocationRepository(ctrl),
		policyRepo:      mocks.NewMockThresholdPolicyRepository(ctrl),
		snapshotRepo:    mocks.NewMockPerformanceSnapshotRepository(ctrl),
		staffResolver:   staffingmocks.NewMockResolver(ctrl),
	}

	service := NewService(
		m.appointmentRepo,
		m.saleRepo,
		m.feedbackRepo,
		m.weeklyRepo,
		m.locationRepo,
		m.policyRepo,
		m.snapshotRepo,
		m.staffResolver,
		config.Capacity{DefaultDailyHours: 8, DefaultStylistCapacity: 4},
		config.Threshold{DefaultMinimumRevenue: 3000, DefaultEvaluationPeriodDays: 30},
	)

	return service, m
}

func testDirectory() *domain.StaffDirectory {
	directory := domain.NewStaffDirectory()
	directory.Add(&domain.StaffIdentity{
		ExternalID:  "S1",
		UserID:      intPtr(10),
		DisplayName: "Ana",
	})
	return directory
}

func TestGetOrganizationPerformance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	// Janela de 7 dias ancorada em 15/03: 09/03 a 15/03, anterior 02/03 a 08/03
	reference := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	currentStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	currentAppointments := make([]*domain.Appointment, 0, 8)
	for i := 0; i < 7; i++ {
		appointment := makeAppointment("S1", currentStart.AddDate(0, 0, i), domain.EngagementStatusCompleted)
		appointment.Rebooked = boolPtr(i < 3)
		appointment.TipAmount = floatPtr(5)
		currentAppointments = append(currentAppointments, appointment)
	}
	// Atendimento de PDV sem identidade mapeada: só nos totais da organização
	currentAppointments = append(currentAppointments, makeAppointment("SX", currentStart, domain.EngagementStatusCompleted))

	currentSales := []*domain.Sale{
		makeSale(stringPtr("S1"), currentStart, 300, 50),
		makeSale(stringPtr("S1"), currentStart.AddDate(0, 0, 2), 250, 0),
		makeSale(nil, currentStart.AddDate(0, 0, 3), 100, 0),
	}

	priorAppointments := []*domain.Appointment{
		makeAppointment("S1", currentStart.AddDate(0, 0, -3), domain.EngagementStatusCompleted),
	}
	priorSales := []*domain.Sale{
		makeSale(stringPtr("S1"), currentStart.AddDate(0, 0, -3), 350, 0),
	}

	m.appointmentRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		DoAndReturn(func(filter *domain.RecordFilter, limit, offset int) ([]*domain.Appointment, error) {
			if filter.StartDate.Equal(currentStart) {
				return currentAppointments, nil
			}
			return priorAppointments, nil
		}).
		Times(2)

	m.saleRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		DoAndReturn(func(filter *domain.RecordFilter, limit, offset int) ([]*domain.Sale, error) {
			if filter.StartDate.Equal(currentStart) {
				return currentSales, nil
			}
			return priorSales, nil
		}).
		Times(2)

	m.feedbackRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return([]*domain.FeedbackResponse{
			{ID: "f1", OrganizationID: "ORG1", UserID: 10},
			{ID: "f2", OrganizationID: "ORG1", UserID: 99}, // usuário fora do diretório
		}, nil)

	m.weeklyRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return([]*domain.WeeklyPerformance{
			{ExternalStaffID: "S1", WeekStart: currentStart, RetentionRate: 64},
		}, nil)

	m.locationRepo.EXPECT().
		ListByOrganization("ORG1", nil).
		Return([]*domain.Location{{ID: "L1", OrganizationID: "ORG1", Active: true}}, nil)

	m.policyRepo.EXPECT().
		GetByOrganization("ORG1").
		Return(nil, nil) // sem política: caem os padrões de configuração

	m.staffResolver.EXPECT().
		ResolveAll("ORG1").
		Return(testDirectory(), nil)

	result, err := service.GetOrganizationPerformance("ORG1", &Filters{
		Selector:  domain.Range7Days,
		Reference: reference,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ORG1", result.OrganizationID)
	assert.Equal(t, currentStart, result.Window.StartDate)
	assert.NotNil(t, result.Window.Prior)

	// Só a Ana vira linha: o profissional sem identidade fica nos totais
	assert.Len(t, result.Staff, 1)
	ana := result.Staff[0]
	assert.Equal(t, "Ana", ana.DisplayName)
	assert.Equal(t, 7, ana.AppointmentCount)
	assert.Equal(t, 3, ana.RebookCount)
	assert.Equal(t, 42.86, ana.RebookRate)
	assert.Equal(t, 600.0, ana.TotalRevenue)
	assert.Equal(t, 64.0, ana.RetentionRate)
	assert.Equal(t, 1, ana.FeedbackCount)
	assert.Equal(t, 7, ana.DaysWithData)

	// Totais da organização incluem o atendimento sem identidade e a venda
	// sem profissional
	assert.Equal(t, 8, result.Organization.AppointmentCount)
	assert.Equal(t, 700.0, result.Organization.TotalRevenue)
	assert.Equal(t, 1, result.Organization.StaffCount)

	// Capacidade: 7 dias * 8h * 4 cadeiras = 224h disponíveis, 8h ocupadas
	assert.Equal(t, 224.0, result.Capacity.AvailableHours)
	assert.Equal(t, 8.0, result.Capacity.BookedHours)

	// Scorecard tem a Ana, que passou da amostra mínima
	assert.Len(t, result.Scorecard, 1)
	assert.Equal(t, "S1", result.Scorecard[0].ExternalStaffID)

	// Tendências: receita, atendimentos e ticket médio contra a janela anterior
	assert.Len(t, result.Trends, 3)
	assert.Equal(t, MetricTotalRevenue, result.Trends[0].Metric)
	assert.Equal(t, 700.0, result.Trends[0].CurrentValue)
	assert.Equal(t, 350.0, result.Trends[0].PriorValue)
	assert.NotNil(t, result.Trends[0].PercentChange)
	assert.Equal(t, 100.0, *result.Trends[0].PercentChange)
	// 7 dias com dados sobre o período padrão de 30: mínimo rateado de 700
	assert.Equal(t, 700.0, result.Trends[0].ProratedMinimum)
	assert.False(t, result.Trends[0].BelowMinimum)
}

func TestGetOrganizationPerformanceComPeriodoInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newServiceWithMocks(ctrl)

	from := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	result, err := service.GetOrganizationPerformance("ORG1", &Filters{From: &from, To: &to})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestGetOrganizationPerformanceComFonteIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.appointmentRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return(nil, errors.New("connection refused"))
	m.saleRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return([]*domain.Sale{}, nil)
	m.feedbackRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return([]*domain.FeedbackResponse{}, nil)
	m.weeklyRepo.EXPECT().
		PageByFilter(gomock.Any(), gomock.Any(), 0).
		Return([]*domain.WeeklyPerformance{}, nil)
	m.locationRepo.EXPECT().
		ListByOrganization("ORG1", nil).
		Return([]*domain.Location{}, nil)
	m.staffResolver.EXPECT().
		ResolveAll("ORG1").
		Return(testDirectory(), nil)

	result, err := service.GetOrganizationPerformance("ORG1", &Filters{
		Selector:  domain.Range7Days,
		Reference: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	})

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrSourceUnavailable))
}

func TestGetDailySeries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	startDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	snapshots := []*domain.PerformanceSnapshot{
		{ID: "snap1", OrganizationID: "ORG1", Date: startDate, TotalRevenue: 1200},
		{ID: "snap2", OrganizationID: "ORG1", Date: startDate.AddDate(0, 0, 1), TotalRevenue: 980},
	}

	m.snapshotRepo.EXPECT().
		GetByDateRange("ORG1", startDate, endDate).
		Return(snapshots, nil)

	result, err := service.GetDailySeries("ORG1", startDate, endDate)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 1200.0, result[0].TotalRevenue)
}

func TestGetDailySeriesComErroDeBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newServiceWithMocks(ctrl)

	m.snapshotRepo.EXPECT().
		GetByDateRange("ORG1", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("timeout"))

	result, err := service.GetDailySeries("ORG1", time.Now().AddDate(0, 0, -7), time.Now())

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrSnapshotSource))
}
