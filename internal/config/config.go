package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Capacity     Capacity     `mapstructure:",squash"`
	Threshold    Threshold    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Capacity concentra os padrões do cálculo de capacidade: horas de
// funcionamento quando a unidade não tem tabela de horários e cadeiras
// quando a capacidade não foi configurada
type Capacity struct {
	DefaultDailyHours      float64 `mapstructure:"capacity_default_daily_hours"`
	DefaultStylistCapacity int     `mapstructure:"capacity_default_stylists"`
}

// Threshold define os padrões da política de alerta usados quando a
// organização ainda não configurou a própria política
type Threshold struct {
	DefaultMinimumRevenue       float64 `mapstructure:"threshold_default_minimum_revenue"`
	DefaultEvaluationPeriodDays int     `mapstructure:"threshold_default_evaluation_days"`
}

// SnapshotSync configura o job diário de consolidação de performance
type SnapshotSync struct {
	CronSchedule      string `mapstructure:"snapshot_sync_cron"`
	LookbackDays      int    `mapstructure:"snapshot_sync_lookback_days"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	RetentionDays     int    `mapstructure:"snapshot_sync_retention_days"`
	Enabled           bool   `mapstructure:"snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/salonops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	// Padrões do cálculo de capacidade
	viper.SetDefault("CAPACITY_DEFAULT_DAILY_HOURS", 8.0) // 8h quando a unidade não configurou horários
	viper.SetDefault("CAPACITY_DEFAULT_STYLISTS", 4)      // 4 cadeiras quando não configurado

	// Padrões da política de alerta
	viper.SetDefault("THRESHOLD_DEFAULT_MINIMUM_REVENUE", 3000.0)
	viper.SetDefault("THRESHOLD_DEFAULT_EVALUATION_DAYS", 30) // 30, 60 ou 90

	// Defaults do job diário de snapshots
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 4 * * *") // Todos os dias às 4h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_LOOKBACK_DAYS", 2)  // Reconsolida os 2 últimos dias
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("SNAPSHOT_SYNC_RETENTION_DAYS", 730)
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile carrega o arquivo .env procurando nas localizações comuns
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
