package performing

import (
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository"
	"github.com/vfg2006/salon-ops-api/infrastructure/store"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	"github.com/vfg2006/salon-ops-api/internal/usecases/staffing"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

type Service struct {
	appointmentRepo       repository.AppointmentRepository
	saleRepo              repository.SaleRepository
	feedbackRepo          repository.FeedbackRepository
	weeklyPerformanceRepo repository.WeeklyPerformanceRepository
	locationRepo          repository.LocationRepository
	thresholdPolicyRepo   repository.ThresholdPolicyRepository
	snapshotRepo          repository.PerformanceSnapshotRepository
	staffResolver         staffing.Resolver
	capacityCfg           config.Capacity
	thresholdCfg          config.Threshold
}

func NewService(
	appointmentRepo repository.AppointmentRepository,
	saleRepo repository.SaleRepository,
	feedbackRepo repository.FeedbackRepository,
	weeklyPerformanceRepo repository.WeeklyPerformanceRepository,
	locationRepo repository.LocationRepository,
	thresholdPolicyRepo repository.ThresholdPolicyRepository,
	snapshotRepo repository.PerformanceSnapshotRepository,
	staffResolver staffing.Resolver,
	capacityCfg config.Capacity,
	thresholdCfg config.Threshold,
) Insighter {
	return &Service{
		appointmentRepo:       appointmentRepo,
		saleRepo:              saleRepo,
		feedbackRepo:          feedbackRepo,
		weeklyPerformanceRepo: weeklyPerformanceRepo,
		locationRepo:          locationRepo,
		thresholdPolicyRepo:   thresholdPolicyRepo,
		snapshotRepo:          snapshotRepo,
		staffResolver:         staffResolver,
		capacityCfg:           capacityCfg,
		thresholdCfg:          thresholdCfg,
	}
}

// rawRecords é tudo que o motor busca das fontes para uma janela
type rawRecords struct {
	Appointments []*domain.Appointment
	Sales        []*domain.Sale
	Feedback     []*domain.FeedbackResponse
	Weekly       []*domain.WeeklyPerformance
	Locations    []*domain.Location
	Directory    *domain.StaffDirectory
}

// GetOrganizationPerformance monta o quadro completo de performance da
// organização na janela pedida
func (s *Service) GetOrganizationPerformance(organizationID string, filters *Filters) (*domain.OrganizationPerformance, error) {
	if filters == nil {
		filters = &Filters{}
	}

	window, err := s.resolveWindow(filters)
	if err != nil {
		return nil, NewPerformingError(ErrInvalidPeriod, organizationID, err.Error())
	}

	records, err := s.fetchRecords(organizationID, filters.LocationID, window)
	if err != nil {
		return nil, err
	}

	engagement := aggregateEngagement(records.Appointments)
	revenue := aggregateRevenue(records.Sales)
	feedback := aggregateFeedback(records.Feedback, records.Directory)
	retention := aggregateRetention(records.Weekly)

	staff := s.buildStaffAggregates(organizationID, records.Directory, engagement, revenue, feedback, retention)

	result := &domain.OrganizationPerformance{
		OrganizationID: organizationID,
		LocationID:     filters.LocationID,
		Window:         window,
		Staff:          staff,
		Organization:   buildOrganizationSummary(engagement, revenue, len(staff)),
		Capacity:       buildCapacitySummary(records.Locations, window, engagement.BookedHours, revenue.Total, s.capacityCfg),
		Scorecard:      buildScorecard(staff),
	}

	if window.Prior != nil {
		trends, err := s.evaluateTrends(organizationID, filters.LocationID, window, result.Organization)
		if err != nil {
			// Tendência é camada acessória: falha aqui não derruba o quadro
			// principal, só sai sem a seção de tendências
			logrus.WithError(err).WithFields(logrus.Fields{
				"organization_id": organizationID,
			}).Warn("Erro ao avaliar tendências do período anterior")
		} else {
			result.Trends = trends
		}
	}

	return result, nil
}

// GetTeamScorecard retorna apenas o score composto da equipe
func (s *Service) GetTeamScorecard(organizationID string, filters *Filters) ([]*domain.CompositeScoreResult, error) {
	result, err := s.GetOrganizationPerformance(organizationID, filters)
	if err != nil {
		return nil, err
	}

	return result.Scorecard, nil
}

// GetCapacityUtilization retorna apenas o resumo de capacidade da janela
func (s *Service) GetCapacityUtilization(organizationID string, filters *Filters) (*domain.CapacitySummary, error) {
	result, err := s.GetOrganizationPerformance(organizationID, filters)
	if err != nil {
		return nil, err
	}

	return result.Capacity, nil
}

// GetThresholdAlerts retorna as avaliações de tendência e mínimo da janela
func (s *Service) GetThresholdAlerts(organizationID string, filters *Filters) ([]*domain.ThresholdEvaluation, error) {
	result, err := s.GetOrganizationPerformance(organizationID, filters)
	if err != nil {
		return nil, err
	}

	return result.Trends, nil
}

// GetDailySeries retorna os agregados diários persistidos pelo job de
// sincronização
func (s *Service) GetDailySeries(organizationID string, startDate, endDate time.Time) ([]*domain.PerformanceSnapshot, error) {
	snapshots, err := s.snapshotRepo.GetByDateRange(organizationID, startDate, endDate)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"organization_id": organizationID,
			"start_date":      startDate.Format(time.DateOnly),
			"end_date":        endDate.Format(time.DateOnly),
		}).Error("Erro ao buscar série diária de performance")
		return nil, NewPerformingError(ErrSnapshotSource, organizationID, err.Error())
	}

	return snapshots, nil
}

// BuildDailySnapshot reduz os atendimentos e vendas de um único dia ao
// agregado diário persistido pelo job de consolidação
func (s *Service) BuildDailySnapshot(organizationID string, date time.Time) (*domain.PerformanceSnapshot, error) {
	window, err := domain.ResolveCustomPeriod(date, date, false)
	if err != nil {
		return nil, NewPerformingError(ErrInvalidPeriod, organizationID, err.Error())
	}

	filter := &domain.RecordFilter{
		OrganizationID:  organizationID,
		StartDate:       window.StartDate,
		EndDate:         window.EndDate,
		ExcludeStatuses: domain.ExcludedStatuses,
	}

	var (
		appointments   []*domain.Appointment
		sales          []*domain.Sale
		appointmentErr error
		saleErr        error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		appointments, appointmentErr = store.FetchAll(func(limit, offset int) ([]*domain.Appointment, error) {
			return s.appointmentRepo.PageByFilter(filter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		sales, saleErr = store.FetchAll(func(limit, offset int) ([]*domain.Sale, error) {
			return s.saleRepo.PageByFilter(filter, limit, offset)
		})
	}()

	wg.Wait()

	if appointmentErr != nil {
		return nil, NewPerformingError(ErrSourceUnavailable, organizationID, appointmentErr.Error())
	}
	if saleErr != nil {
		return nil, NewPerformingError(ErrSourceUnavailable, organizationID, saleErr.Error())
	}

	engagement := aggregateEngagement(appointments)
	revenue := aggregateRevenue(sales)

	return &domain.PerformanceSnapshot{
		OrganizationID:   organizationID,
		Date:             window.StartDate,
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(revenue.Total),
		TransactionCount: revenue.SaleCount,
		AppointmentCount: engagement.AppointmentCount,
		BookedHours:      utils.RoundWithTwoDecimalPlace(engagement.BookedHours),
	}, nil
}

// GetThresholdPolicy retorna a política de alerta da organização. Sem
// política salva, devolve os padrões de configuração com alertas ligados.
func (s *Service) GetThresholdPolicy(organizationID string) (*domain.ThresholdPolicy, error) {
	policy, err := s.thresholdPolicyRepo.GetByOrganization(organizationID)
	if err != nil {
		return nil, NewPerformingError(ErrSourceUnavailable, organizationID, err.Error())
	}

	if policy == nil {
		policy = &domain.ThresholdPolicy{
			OrganizationID:       organizationID,
			MinimumRevenue:       s.thresholdCfg.DefaultMinimumRevenue,
			EvaluationPeriodDays: s.thresholdCfg.DefaultEvaluationPeriodDays,
			AlertsEnabled:        true,
		}
	}

	return policy, nil
}

// validEvaluationPeriods são os períodos de avaliação aceitos pela política
var validEvaluationPeriods = map[int]bool{30: true, 60: true, 90: true}

// SaveThresholdPolicy valida e persiste a política de alerta da organização
func (s *Service) SaveThresholdPolicy(policy *domain.ThresholdPolicy) error {
	if policy.OrganizationID == "" {
		return NewPerformingError(ErrInvalidPolicy, "", "organização é obrigatória")
	}

	if policy.MinimumRevenue < 0 {
		return NewPerformingError(ErrInvalidPolicy, policy.OrganizationID, "o mínimo de receita não pode ser negativo")
	}

	if !validEvaluationPeriods[policy.EvaluationPeriodDays] {
		return NewPerformingError(ErrInvalidPolicy, policy.OrganizationID, "o período de avaliação deve ser 30, 60 ou 90 dias")
	}

	return s.thresholdPolicyRepo.SaveOrUpdate(policy)
}

// resolveWindow converte os filtros em uma janela canônica com o período
// anterior anexado. Datas explícitas têm precedência sobre o seletor.
func (s *Service) resolveWindow(filters *Filters) (*domain.PeriodWindow, error) {
	reference := filters.Reference
	if reference.IsZero() {
		reference = time.Now()
	}

	if filters.From != nil && filters.To != nil {
		return domain.ResolveCustomPeriod(*filters.From, *filters.To, true)
	}

	selector := filters.Selector
	if selector == "" {
		selector = domain.Range30Days
	}

	return domain.ResolvePeriod(selector, reference, true)
}

// fetchRecords busca em paralelo tudo que a janela precisa: as quatro
// fontes paginadas, as unidades e o diretório de equipe
func (s *Service) fetchRecords(organizationID string, locationID *string, window *domain.PeriodWindow) (*rawRecords, error) {
	filter := &domain.RecordFilter{
		OrganizationID:  organizationID,
		LocationID:      locationID,
		StartDate:       window.StartDate,
		EndDate:         window.EndDate,
		ExcludeStatuses: domain.ExcludedStatuses,
	}

	records := &rawRecords{}

	var (
		appointmentErr error
		saleErr        error
		feedbackErr    error
		weeklyErr      error
		locationErr    error
		directoryErr   error
	)

	wg := sync.WaitGroup{}
	wg.Add(6)

	go func() {
		defer wg.Done()
		records.Appointments, appointmentErr = store.FetchAll(func(limit, offset int) ([]*domain.Appointment, error) {
			return s.appointmentRepo.PageByFilter(filter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		records.Sales, saleErr = store.FetchAll(func(limit, offset int) ([]*domain.Sale, error) {
			return s.saleRepo.PageByFilter(filter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		records.Feedback, feedbackErr = store.FetchAll(func(limit, offset int) ([]*domain.FeedbackResponse, error) {
			return s.feedbackRepo.PageByFilter(filter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		records.Weekly, weeklyErr = store.FetchAll(func(limit, offset int) ([]*domain.WeeklyPerformance, error) {
			return s.weeklyPerformanceRepo.PageByFilter(filter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		records.Locations, locationErr = s.locationRepo.ListByOrganization(organizationID, locationID)
	}()

	go func() {
		defer wg.Done()
		records.Directory, directoryErr = s.staffResolver.ResolveAll(organizationID)
	}()

	wg.Wait()

	for _, err := range []error{appointmentErr, saleErr, feedbackErr, weeklyErr, locationErr} {
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"organization_id": organizationID,
				"start_date":      window.StartDate.Format(time.DateOnly),
				"end_date":        window.EndDate.Format(time.DateOnly),
			}).Error("Erro ao buscar registros brutos do período")
			return nil, NewPerformingError(ErrSourceUnavailable, organizationID, err.Error())
		}
	}

	if directoryErr != nil {
		return nil, NewPerformingError(ErrStaffDirectory, organizationID, directoryErr.Error())
	}

	return records, nil
}

// buildStaffAggregates junta as reduções por profissional em uma linha por
// identidade conhecida. Registros de IDs fora do diretório ficam só nos
// totais da organização e são logados para o time de integração investigar.
func (s *Service) buildStaffAggregates(
	organizationID string,
	directory *domain.StaffDirectory,
	engagement *engagementRollup,
	revenue *revenueRollup,
	feedback map[string]int,
	retention map[string]*retentionTotals,
) []*domain.StaffMetricAggregate {
	staffIDs := make(map[string]struct{}, len(engagement.ByStaff))
	for staffID := range engagement.ByStaff {
		staffIDs[staffID] = struct{}{}
	}
	for staffID := range revenue.ByStaff {
		staffIDs[staffID] = struct{}{}
	}

	aggregates := make([]*domain.StaffMetricAggregate, 0, len(staffIDs))

	for staffID := range staffIDs {
		identity, ok := directory.Resolve(staffID)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"organization_id":   organizationID,
				"external_staff_id": staffID,
			}).Warn("Registros de profissional sem identidade mapeada; contando apenas nos totais da organização")
			continue
		}

		aggregate := &domain.StaffMetricAggregate{
			ExternalStaffID: staffID,
			UserID:          identity.UserID,
			DisplayName:     identity.DisplayName,
			PhotoURL:        identity.PhotoURL,
			RetentionRate:   retentionRateFor(retention, staffID),
		}

		if totals, ok := revenue.ByStaff[staffID]; ok {
			aggregate.TotalRevenue = utils.RoundWithTwoDecimalPlace(totals.Total)
			aggregate.ServiceRevenue = utils.RoundWithTwoDecimalPlace(totals.ServiceTotal)
			aggregate.ProductRevenue = utils.RoundWithTwoDecimalPlace(totals.ProductTotal)
			aggregate.TransactionCount = totals.TransactionCount
			aggregate.AverageTicket = utils.RoundWithTwoDecimalPlace(utils.Ratio(totals.Total, float64(totals.TransactionCount)))
			aggregate.RetailAttachmentRate = totals.RetailAttachmentRate()
		}

		if totals, ok := engagement.ByStaff[staffID]; ok {
			aggregate.AppointmentCount = totals.AppointmentCount
			aggregate.RebookCount = totals.RebookCount
			aggregate.RebookRate = totals.RebookRate()
			aggregate.TipTotal = utils.RoundWithTwoDecimalPlace(totals.TipTotal)
			aggregate.AverageTip = utils.RoundWithTwoDecimalPlace(totals.AverageTip())
			aggregate.TippedAppointmentRate = totals.TippedAppointmentRate()
			aggregate.TipPercentOfPrice = totals.TipPercentOfPrice()
			aggregate.BookedHours = utils.RoundWithTwoDecimalPlace(totals.BookedHours)
			aggregate.DaysWithData = len(totals.Dates)
		}

		aggregate.FeedbackCount = feedback[staffID]
		aggregate.FeedbackRate = utils.Rate(aggregate.FeedbackCount, aggregate.AppointmentCount)

		aggregates = append(aggregates, aggregate)
	}

	// Maior receita primeiro, que é a ordem natural do painel da equipe
	sort.Slice(aggregates, func(i, j int) bool {
		if aggregates[i].TotalRevenue != aggregates[j].TotalRevenue {
			return aggregates[i].TotalRevenue > aggregates[j].TotalRevenue
		}

		return aggregates[i].DisplayName < aggregates[j].DisplayName
	})

	return aggregates
}

// buildOrganizationSummary consolida os totais da organização, incluindo
// registros sem profissional atribuível
func buildOrganizationSummary(engagement *engagementRollup, revenue *revenueRollup, staffCount int) *domain.OrganizationSummary {
	dates := make(map[string]struct{}, len(engagement.Dates)+len(revenue.Dates))
	for date := range engagement.Dates {
		dates[date] = struct{}{}
	}
	for date := range revenue.Dates {
		dates[date] = struct{}{}
	}

	return &domain.OrganizationSummary{
		TotalRevenue:     utils.RoundWithTwoDecimalPlace(revenue.Total),
		ServiceRevenue:   utils.RoundWithTwoDecimalPlace(revenue.ServiceTotal),
		ProductRevenue:   utils.RoundWithTwoDecimalPlace(revenue.ProductTotal),
		TransactionCount: revenue.SaleCount,
		AverageTicket:    utils.RoundWithTwoDecimalPlace(revenue.AverageTicket()),
		AppointmentCount: engagement.AppointmentCount,
		StaffCount:       staffCount,
		DaysWithData:     len(dates),
	}
}

// evaluateTrends busca o período anterior e compara as métricas principais,
// aplicando a política de mínimo da organização sobre a receita
func (s *Service) evaluateTrends(
	organizationID string,
	locationID *string,
	window *domain.PeriodWindow,
	current *domain.OrganizationSummary,
) ([]*domain.ThresholdEvaluation, error) {
	priorFilter := &domain.RecordFilter{
		OrganizationID:  organizationID,
		LocationID:      locationID,
		StartDate:       window.Prior.StartDate,
		EndDate:         window.Prior.EndDate,
		ExcludeStatuses: domain.ExcludedStatuses,
	}

	var (
		priorAppointments []*domain.Appointment
		priorSales        []*domain.Sale
		appointmentErr    error
		saleErr           error
	)

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		priorAppointments, appointmentErr = store.FetchAll(func(limit, offset int) ([]*domain.Appointment, error) {
			return s.appointmentRepo.PageByFilter(priorFilter, limit, offset)
		})
	}()

	go func() {
		defer wg.Done()
		priorSales, saleErr = store.FetchAll(func(limit, offset int) ([]*domain.Sale, error) {
			return s.saleRepo.PageByFilter(priorFilter, limit, offset)
		})
	}()

	wg.Wait()

	if appointmentErr != nil {
		return nil, appointmentErr
	}
	if saleErr != nil {
		return nil, saleErr
	}

	priorEngagement := aggregateEngagement(priorAppointments)
	priorRevenue := aggregateRevenue(priorSales)

	policy, err := s.thresholdPolicyRepo.GetByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		policy = &domain.ThresholdPolicy{
			OrganizationID:       organizationID,
			MinimumRevenue:       s.thresholdCfg.DefaultMinimumRevenue,
			EvaluationPeriodDays: s.thresholdCfg.DefaultEvaluationPeriodDays,
			AlertsEnabled:        true,
		}
	}

	revenueEvaluation := evaluateTrend(MetricTotalRevenue, current.TotalRevenue, priorRevenue.Total, current.DaysWithData)
	applyThresholdPolicy(revenueEvaluation, policy)

	return []*domain.ThresholdEvaluation{
		revenueEvaluation,
		evaluateTrend(MetricAppointmentCount, float64(current.AppointmentCount), float64(priorEngagement.AppointmentCount), current.DaysWithData),
		evaluateTrend(MetricAverageTicket, current.AverageTicket, priorRevenue.AverageTicket(), current.DaysWithData),
	}, nil
}
