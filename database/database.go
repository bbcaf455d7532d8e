package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Studynest/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the configured SQL backend. Postgres is the default;
// MySQL matches the schema the app started on, and SQLite serves local runs
// and tests.
func NewDatabase(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// SQLite allows one writer; serialise through a single connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return db, nil
}

// Dialector builds the gorm dialector for the given settings.
func Dialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port)
		return postgres.Open(dsn), nil
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		return mysql.Open(dsn), nil
	case "sqlite":
		path := cfg.Path
		if path == "" {
			path = "studynest.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// RandomOrder returns the dialect's random ordering function.
func RandomOrder(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "RAND()"
	}
	return "RANDOM()"
}
