package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/salon-ops-api/infrastructure/database/postgres"
	"github.com/vfg2006/salon-ops-api/infrastructure/repository"
	"github.com/vfg2006/salon-ops-api/internal/api"
	"github.com/vfg2006/salon-ops-api/internal/config"
	"github.com/vfg2006/salon-ops-api/internal/scheduler"
	"github.com/vfg2006/salon-ops-api/internal/usecases/authenticating"
	"github.com/vfg2006/salon-ops-api/internal/usecases/performing"
	"github.com/vfg2006/salon-ops-api/internal/usecases/staffing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	appointmentRepo := repository.NewAppointmentRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)
	feedbackRepo := repository.NewFeedbackRepository(pgConn)
	weeklyPerformanceRepo := repository.NewWeeklyPerformanceRepository(pgConn)
	locationRepo := repository.NewLocationRepository(pgConn)
	thresholdPolicyRepo := repository.NewThresholdPolicyRepository(pgConn)
	snapshotRepo := repository.NewPerformanceSnapshotRepository(pgConn)
	staffMappingRepo := repository.NewStaffMappingRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	staffResolver := staffing.NewService(staffMappingRepo, employeeRepo)

	performanceService := performing.NewService(
		appointmentRepo,
		saleRepo,
		feedbackRepo,
		weeklyPerformanceRepo,
		locationRepo,
		thresholdPolicyRepo,
		snapshotRepo,
		staffResolver,
		cfg.Capacity,
		cfg.Threshold,
	)

	// Inicializa o agendador de consolidação diária de snapshots
	snapshotSyncService := scheduler.NewPerformanceSnapshotSyncService(
		locationRepo,
		snapshotRepo,
		performanceService,
		cfg,
	)

	// Inicia o agendador em background
	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação de snapshots")
	} else {
		logrus.Info("Agendador de consolidação de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		performanceService,
		authenticator,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
