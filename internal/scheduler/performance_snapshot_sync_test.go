package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository/mocks"
	"github.com/vfg2006/salon-ops-api/internal/domain"
	performingmocks "github.com/vfg2006/salon-ops-api/internal/usecases/performing/mocks"
	"go.uber.org/mock/gomock"
)

func newSyncServiceForTest(
	locationRepo *mocks.MockLocationRepository,
	snapshotRepo *mocks.MockPerformanceSnapshotRepository,
	performanceService *performingmocks.MockInsighter,
	cfg PerformanceSnapshotSyncConfig,
) *PerformanceSnapshotSyncService {
	return &PerformanceSnapshotSyncService{
		config:             cfg,
		locationRepo:       locationRepo,
		snapshotRepo:       snapshotRepo,
		performanceService: performanceService,
	}
}

func TestSyncAllOrganizations(t *testing.T) {
	baseConfig := PerformanceSnapshotSyncConfig{
		LookbackDays:      2,
		MaxConcurrentJobs: 2,
		RetentionDays:     730,
		SyncEnabled:       true,
	}

	tests := []struct {
		name  string
		setup func(
			locationRepo *mocks.MockLocationRepository,
			snapshotRepo *mocks.MockPerformanceSnapshotRepository,
			performanceService *performingmocks.MockInsighter,
		)
	}{
		{
			name: "Consolida cada organização para cada dia de releitura e poda os antigos",
			setup: func(
				locationRepo *mocks.MockLocationRepository,
				snapshotRepo *mocks.MockPerformanceSnapshotRepository,
				performanceService *performingmocks.MockInsighter,
			) {
				locationRepo.EXPECT().
					ListOrganizationIDs().
					Return([]string{"ORG1", "ORG2"}, nil)

				// 2 organizações x 2 dias de releitura
				performanceService.EXPECT().
					BuildDailySnapshot(gomock.Any(), gomock.Any()).
					DoAndReturn(func(organizationID string, date time.Time) (*domain.PerformanceSnapshot, error) {
						return &domain.PerformanceSnapshot{
							OrganizationID: organizationID,
							Date:           date,
							TotalRevenue:   100,
						}, nil
					}).
					Times(4)

				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					DoAndReturn(func(snapshot *domain.PerformanceSnapshot) error {
						// O job preenche o ID antes de persistir
						assert.NotEmpty(t, snapshot.ID)
						return nil
					}).
					Times(4)

				snapshotRepo.EXPECT().
					DeleteOlderThan(730).
					Return(int64(3), nil)
			},
		},
		{
			name: "Falha em um dia não derruba os demais",
			setup: func(
				locationRepo *mocks.MockLocationRepository,
				snapshotRepo *mocks.MockPerformanceSnapshotRepository,
				performanceService *performingmocks.MockInsighter,
			) {
				locationRepo.EXPECT().
					ListOrganizationIDs().
					Return([]string{"ORG1"}, nil)

				failed := false
				performanceService.EXPECT().
					BuildDailySnapshot("ORG1", gomock.Any()).
					DoAndReturn(func(organizationID string, date time.Time) (*domain.PerformanceSnapshot, error) {
						if !failed {
							failed = true
							return nil, errors.New("fonte indisponível")
						}
						return &domain.PerformanceSnapshot{OrganizationID: organizationID, Date: date}, nil
					}).
					Times(2)

				// Apenas o dia que deu certo é persistido
				snapshotRepo.EXPECT().
					SaveOrUpdate(gomock.Any()).
					Return(nil).
					Times(1)

				snapshotRepo.EXPECT().
					DeleteOlderThan(730).
					Return(int64(0), nil)
			},
		},
		{
			name: "Sem organizações o job termina sem tocar no banco",
			setup: func(
				locationRepo *mocks.MockLocationRepository,
				snapshotRepo *mocks.MockPerformanceSnapshotRepository,
				performanceService *performingmocks.MockInsighter,
			) {
				locationRepo.EXPECT().
					ListOrganizationIDs().
					Return([]string{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			locationRepo := mocks.NewMockLocationRepository(ctrl)
			snapshotRepo := mocks.NewMockPerformanceSnapshotRepository(ctrl)
			performanceService := performingmocks.NewMockInsighter(ctrl)
			tt.setup(locationRepo, snapshotRepo, performanceService)

			service := newSyncServiceForTest(locationRepo, snapshotRepo, performanceService, baseConfig)
			service.SyncAllOrganizations()
		})
	}
}

func TestGetDatesToProcess(t *testing.T) {
	service := newSyncServiceForTest(nil, nil, nil, PerformanceSnapshotSyncConfig{LookbackDays: 3})

	dates := service.getDatesToProcess()

	assert.Len(t, dates, 3)
	yesterday := time.Now().AddDate(0, 0, -1)
	assert.Equal(t, yesterday.Format(time.DateOnly), dates[0].Format(time.DateOnly))
	assert.Equal(t, yesterday.AddDate(0, 0, -2).Format(time.DateOnly), dates[2].Format(time.DateOnly))
}

func TestGetDatesToProcessComLookbackInvalido(t *testing.T) {
	service := newSyncServiceForTest(nil, nil, nil, PerformanceSnapshotSyncConfig{LookbackDays: 0})

	// Lookback não positivo cai no mínimo de um dia
	assert.Len(t, service.getDatesToProcess(), 1)
}
