// Package database implements the storage contract on GORM. Production runs
// against Postgres via DATABASE_URL; local development can point the same
// store at a SQLite file instead.
package database

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"officehub/internal/models"
)

// Store wraps the GORM connection. Concurrency control is left entirely to
// the database; no operation spans more than one statement transactionally.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

// Open connects through the given dialector and runs migrations.
func Open(dialector gorm.Dialector, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// OpenPostgres connects to the production database.
func OpenPostgres(dsn string, logger *slog.Logger) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("empty postgres connection string")
	}
	return Open(postgres.Open(dsn), logger)
}

// OpenSQLite connects to a local database file, creating parent directories
// as needed.
func OpenSQLite(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	return Open(sqlite.Open(fmt.Sprintf("file:%s?_busy_timeout=5000", path)), logger)
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) migrate() error {
	err := s.db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Employee{},
		&models.Finance{},
		&models.Attendance{},
	)
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
