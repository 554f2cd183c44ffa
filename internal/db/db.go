package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vietanh2810/cake-api/internal/config"
)

// Open connects to the store selected by conf.Database.Driver. For
// PostgreSQL a non-empty conf.Database.URL wins over the postgres section.
func Open(conf *config.AppConfig) (*gorm.DB, error) {
	switch conf.Database.Driver {
	case config.DriverPostgres:
		if conf.Database.URL != "" {
			return OpenPostgresWithURL(conf.Database.URL, conf.Postgres)
		}
		return OpenPostgres(conf.Postgres)
	case config.DriverSQLite:
		return OpenSQLite(conf.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", conf.Database.Driver)
	}
}

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		conf.Host,
		conf.Port,
		conf.User,
		conf.Password,
		conf.DBName,
		conf.SSLMode,
	)

	return OpenPostgresWithURL(dsn, conf)
}

// OpenPostgresWithURL accepts both URL and key=value DSNs. Pool settings are
// taken from pool when it is not nil.
func OpenPostgresWithURL(dsn string, pool *config.PostgresConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if pool != nil {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db.DB -> %w", err)
		}
		if pool.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
		}
		if pool.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
		}
		if pool.ConnMaxLifetime > 0 {
			sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
		}
	}

	zap.L().Info("connected to postgres")

	return db, nil
}

func OpenSQLite(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("os.MkdirAll -> %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	// SQLite has a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB -> %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	zap.L().Info("connected to sqlite", zap.String("path", path))

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("db.DB -> %w", err)
	}

	if err = sqlDB.Close(); err != nil {
		return fmt.Errorf("sqlDB.Close -> %w", err)
	}

	return nil
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: newGormLogger(),
	}
}
