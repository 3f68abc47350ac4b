package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/usecases/performing"
	"github.com/vfg2006/salon-ops-api/pkg/utils"
)

// PerformanceSnapshotSyncConfig representa a configuração do job de
// consolidação diária de performance
type PerformanceSnapshotSyncConfig struct {
	CronSchedule      string
	LookbackDays      int
	MaxConcurrentJobs int
	RetentionDays     int
	SyncEnabled       bool
}

// PerformanceSnapshotSyncService agenda e executa a consolidação diária:
// reduz os registros brutos do dia anterior (e os dias de releitura) ao
// agregado por organização e poda os snapshots fora da retenção
type PerformanceSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              PerformanceSnapshotSyncConfig
	locationRepo        repository.LocationRepository
	snapshotRepo        repository.PerformanceSnapshotRepository
	performanceService  performing.Insighter
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewPerformanceSnapshotSyncService cria o serviço de consolidação diária
func NewPerformanceSnapshotSyncService(
	locationRepo repository.LocationRepository,
	snapshotRepo repository.PerformanceSnapshotRepository,
	performanceService performing.Insighter,
	appConfig *config.Config,
) *PerformanceSnapshotSyncService {
	syncConfig := PerformanceSnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		LookbackDays:      appConfig.SnapshotSync.LookbackDays,
		MaxConcurrentJobs: appConfig.SnapshotSync.MaxConcurrentJobs,
		RetentionDays:     appConfig.SnapshotSync.RetentionDays,
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"lookback_days":       syncConfig.LookbackDays,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"retention_days":      syncConfig.RetentionDays,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de consolidação de performance carregada")

	return &PerformanceSnapshotSyncService{
		scheduler:          scheduler,
		config:             syncConfig,
		locationRepo:       locationRepo,
		snapshotRepo:       snapshotRepo,
		performanceService: performanceService,
		syncRunning:        false,
	}
}

// Start inicia o agendador
func (s *PerformanceSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação diária de performance desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação de performance")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SyncAllOrganizations()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação de performance: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação de performance")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncAllOrganizations consolida os dias de releitura de todas as
// organizações com unidade ativa. Exportado para o disparo manual via API.
func (s *PerformanceSnapshotSyncService) SyncAllOrganizations() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de performance já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	organizationIDs, err := s.locationRepo.ListOrganizationIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar organizações para consolidação de performance")
		return
	}

	if len(organizationIDs) == 0 {
		logrus.Info("Nenhuma organização encontrada para consolidação de performance")
		return
	}

	dates := s.getDatesToProcess()
	logrus.WithFields(logrus.Fields{
		"organizations": len(organizationIDs),
		"days":          s.config.LookbackDays,
		"start_date":    dates[len(dates)-1].Format(time.DateOnly),
		"end_date":      dates[0].Format(time.DateOnly),
	}).Info("Período para consolidação de performance")

	s.processOrganizations(organizationIDs, dates)

	// Poda os snapshots fora da janela de retenção
	if s.config.RetentionDays > 0 {
		deleted, err := s.snapshotRepo.DeleteOlderThan(s.config.RetentionDays)
		if err != nil {
			logrus.WithError(err).Error("Erro ao podar snapshots antigos de performance")
		} else if deleted > 0 {
			logrus.WithField("deleted", deleted).Info("Snapshots antigos de performance removidos")
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":      duration.String(),
		"organizations": len(organizationIDs),
		"days":          s.config.LookbackDays,
	}).Info("Consolidação de performance concluída")

	s.lastSyncCompletedAt = time.Now()
}

// getDatesToProcess cria o conjunto de datas a consolidar, de ontem para
// trás. A releitura de mais de um dia cobre lançamentos retroativos no PDV.
func (s *PerformanceSnapshotSyncService) getDatesToProcess() []time.Time {
	lookback := s.config.LookbackDays
	if lookback < 1 {
		lookback = 1
	}

	dates := make([]time.Time, lookback)
	for i := 0; i < lookback; i++ {
		dates[i] = time.Now().AddDate(0, 0, -i-1)
	}
	return dates
}

// processOrganizations consolida cada organização com concorrência limitada
func (s *PerformanceSnapshotSyncService) processOrganizations(organizationIDs []string, dates []time.Time) {
	maxConcurrent := s.config.MaxConcurrentJobs
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	semaphore := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for _, organizationID := range organizationIDs {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(orgID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			s.processOrganization(orgID, dates)
		}(organizationID)
	}

	wg.Wait()
}

// processOrganization consolida todas as datas de uma organização, um dia
// por vez. Falha em um dia não impede os demais.
func (s *PerformanceSnapshotSyncService) processOrganization(organizationID string, dates []time.Time) {
	for _, date := range dates {
		snapshot, err := s.performanceService.BuildDailySnapshot(organizationID, date)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"organization_id": organizationID,
				"date":            date.Format(time.DateOnly),
			}).Error("Erro ao montar snapshot diário de performance")
			continue
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar identificador de snapshot")
			continue
		}
		snapshot.ID = id

		if err := s.snapshotRepo.SaveOrUpdate(snapshot); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"organization_id": organizationID,
				"date":            date.Format(time.DateOnly),
			}).Error("Erro ao persistir snapshot diário de performance")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"organization_id":   organizationID,
			"date":              date.Format(time.DateOnly),
			"total_revenue":     snapshot.TotalRevenue,
			"appointment_count": snapshot.AppointmentCount,
		}).Debug("Snapshot diário de performance consolidado")
	}
}

// TriggerManualSync dispara a consolidação fora do agendamento do cron.
func (s *PerformanceSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação de snapshots já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de snapshots de performance")
	go s.SyncAllOrganizations()
}

// GetStatus retorna o status atual do agendador
func (s *PerformanceSnapshotSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_lookback_days":     s.config.LookbackDays,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"retention_days":         s.config.RetentionDays,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
