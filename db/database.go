package db

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"expedientes_app_go/config"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Turso when TURSO_DATABASE_URL is set, otherwise to a local
// SQLite file in WAL mode
func Open(cfg *config.Config) (*gorm.DB, error) {
	// Determine log level based on environment
	logLevel := logger.Info
	if cfg.Environment == "production" {
		logLevel = logger.Warn
	}
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	}

	if cfg.TursoDatabaseURL != "" {
		dsn := cfg.TursoDatabaseURL
		if cfg.TursoAuthToken != "" {
			dsn += "?authToken=" + cfg.TursoAuthToken
		}
		conn, err := gorm.Open(sqlite.New(sqlite.Config{
			DriverName: "libsql",
			DSN:        dsn,
		}), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to turso: %w", err)
		}
		log.Println("Database connection established (Turso)")
		return conn, nil
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Enable WAL mode for better concurrency support
	dsn := cfg.DBPath + "?_journal_mode=WAL"
	conn, err := gorm.Open(sqlite.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established (WAL mode enabled)")
	return conn, nil
}

// AutoMigrate runs database migrations for the provided models
func AutoMigrate(conn *gorm.DB, models ...interface{}) error {
	if conn == nil {
		return fmt.Errorf("database not initialized")
	}

	if err := conn.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed")
	return nil
}

// Close closes the database connection
func Close(conn *gorm.DB) error {
	if conn == nil {
		return nil
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	return sqlDB.Close()
}
