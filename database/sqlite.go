package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens the SQLite database at dataSourceName with foreign keys enforced
func Open(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", withDefaultParams(dataSourceName))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite allows a single writer; one pooled connection keeps the
	// foreign_keys pragma and avoids "database is locked" under load.
	db.SetMaxOpenConns(1)

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(ctx context.Context, dataSourceName string, logger *slog.Logger) (*sql.DB, error) {
	db, err := Open(dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db, logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("database initialized", slog.String("dsn", dataSourceName))
	return db, nil
}

// withDefaultParams appends the driver options every connection needs
func withDefaultParams(dsn string) string {
	params := []string{"_foreign_keys=on", "_busy_timeout=5000"}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	var missing []string
	for _, p := range params {
		key := p[:strings.Index(p, "=")]
		if !strings.Contains(dsn, key+"=") {
			missing = append(missing, p)
		}
	}
	if len(missing) == 0 {
		return dsn
	}
	return dsn + sep + strings.Join(missing, "&")
}
