package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/notasapp/go-notas/internal/logger"
	"github.com/notasapp/go-notas/migrations"
)

// DB wraps the sqlite connection used by the cache repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewConnectSQLite opens (creating if necessary) the local cache database at
// path, verifies the connection, and applies pending migrations.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("path", path).Msg("error creating cache database file")
		return nil, fmt.Errorf("create cache database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping cache database: %w", err)
	}

	if err = migrations.Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate cache database: %w", err)
	}

	log.Debug().Str("path", path).Msg("cache database ready")
	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return err
		}
		return f.Close()
	}
	return nil
}
