package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	types "github.com/sundialapp/sundial-backend/internal/domain"
	"github.com/sundialapp/sundial-backend/internal/platform/envutil"
	"github.com/sundialapp/sundial-backend/internal/platform/logger"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New connects to the configured database. Postgres is the default; DB_DRIVER=sqlite
// switches to a local file for development.
func New(baseLog *logger.Logger) (*Service, error) {
	svcLog := baseLog.With("service", "DBService")

	var (
		db  *gorm.DB
		err error
	)
	switch envutil.String("DB_DRIVER", "postgres") {
	case "sqlite":
		path := envutil.String("SQLITE_PATH", "sundial.db")
		svcLog.Info("Opening sqlite database", "path", path)
		db, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
	default:
		host := envutil.String("POSTGRES_HOST", "localhost")
		port := envutil.String("POSTGRES_PORT", "5432")
		user := envutil.String("POSTGRES_USER", "postgres")
		password := envutil.String("POSTGRES_PASSWORD", "")
		name := envutil.String("POSTGRES_NAME", "sundial")

		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		svcLog.Info("Connecting to Postgres...", "host", host, "db", name)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
			return nil, fmt.Errorf("enable uuid-ossp extension: %w", err)
		}
	}

	return &Service{db: db, log: svcLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	return s.db.AutoMigrate(
		&types.User{},
		&types.CheckIn{},
	)
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
