package db

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/vietanh2810/canteen-api/internal/config"
)

func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%v user=%v password=%v dbname=%v port=%v sslmode=%v",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port, conf.SSLMode)

	return OpenPostgresWithURL(dsn)
}

// OpenPostgresWithURL accepts either a keyword/value DSN or a postgres:// URL.
func OpenPostgresWithURL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	return db, nil
}

// OpenSQLite opens a SQLite database file. Use ":memory:" for a throwaway
// database; it is limited to one connection so every query sees the same data.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gorm.Open -> %w", err)
	}

	if path == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("db.DB -> %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Open(conf *config.AppConfig, databaseURL string) (*gorm.DB, error) {
	if conf.API.DatabaseDriver == config.DriverSQLite {
		return OpenSQLite(conf.SQLite.Path)
	}
	if databaseURL != "" {
		return OpenPostgresWithURL(databaseURL)
	}

	return OpenPostgres(conf.Postgres)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		// Timestamps are stored in UTC and converted to the canteen zone on read.
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}
