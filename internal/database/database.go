// Package database opens the principal store and carries transactions through contexts.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config holds database configuration settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// Connect opens and pings the principal store. MySQL connection strings are forced
// to parse DATETIME columns so timestamps scan into time.Time.
func Connect(cfg Config) (*sql.DB, error) {
	dsn, err := normalizeDSN(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func normalizeDSN(driver, dsn string) (string, error) {
	switch driver {
	case DriverPostgres:
		return dsn, nil
	case DriverMySQL:
		mysqlCfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql connection string: %w", err)
		}
		mysqlCfg.ParseTime = true
		return mysqlCfg.FormatDSN(), nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}
