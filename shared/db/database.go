package db

import (
	"context"
	"database/sql"
)

// Database is a connection to a database/sql backed store.
type Database interface {
	Connect(ctx context.Context) error
	Close() error
	DB() *sql.DB
}
