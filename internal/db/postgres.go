package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yungbote/teampulse-backend/internal/domain"
	"github.com/yungbote/teampulse-backend/internal/platform/envutil"
	"github.com/yungbote/teampulse-backend/internal/platform/logger"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	log.Info("Loading environment variables...")
	postgresHost := envutil.String("POSTGRES_HOST", "localhost", log)
	postgresPort := envutil.String("POSTGRES_PORT", "5432", log)
	postgresUser := envutil.String("POSTGRES_USER", "postgres", log)
	postgresPassword := envutil.String("POSTGRES_PASSWORD", "", log)
	postgresName := envutil.String("POSTGRES_NAME", "teampulse", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	log.Info("Connecting to Postgres...")
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := gdb.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: gdb, log: serviceLog}, nil
}

func (ps *PostgresService) DB() *gorm.DB { return ps.db }

func (ps *PostgresService) AutoMigrateAll() error {
	ps.log.Info("Running automigrations...")
	return ps.db.AutoMigrate(
		&domain.Contribution{},
		&domain.WorkOrder{},
	)
}
