package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

var errAbort = errors.New("abort")

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	_, err = conn.Exec(`CREATE TABLE captions (seq INTEGER PRIMARY KEY AUTOINCREMENT, caption TEXT)`)
	if err != nil {
		t.Fatalf("Failed to create test table: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

func countRows(t *testing.T, conn *sql.DB) int {
	t.Helper()
	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM captions").Scan(&count); err != nil {
		t.Fatalf("Failed to query: %v", err)
	}
	return count
}

func insertCaption(ctx context.Context, conn *sql.DB, caption string) error {
	_, err := GetExecutor(ctx, conn).ExecContext(ctx, "INSERT INTO captions (caption) VALUES (?)", caption)
	return err
}

func TestRunInTransaction(t *testing.T) {
	tests := []struct {
		name      string
		fn        func(ctx context.Context, conn *sql.DB) error
		wantErr   bool
		wantCount int
	}{
		{
			name: "commit",
			fn: func(ctx context.Context, conn *sql.DB) error {
				return insertCaption(ctx, conn, "first")
			},
			wantCount: 1,
		},
		{
			name: "rollback on error",
			fn: func(ctx context.Context, conn *sql.DB) error {
				if err := insertCaption(ctx, conn, "first"); err != nil {
					return err
				}
				return errAbort
			},
			wantErr:   true,
			wantCount: 0,
		},
		{
			name: "nested reuses outer transaction",
			fn: func(ctx context.Context, conn *sql.DB) error {
				if err := insertCaption(ctx, conn, "outer"); err != nil {
					return err
				}
				outer, _ := GetTx(ctx)
				return RunInTransaction(ctx, conn, func(inner context.Context) error {
					if tx, _ := GetTx(inner); tx != outer {
						return errors.New("nested call opened a new transaction")
					}
					return insertCaption(inner, conn, "inner")
				})
			},
			wantCount: 2,
		},
		{
			name: "nested failure rolls back everything",
			fn: func(ctx context.Context, conn *sql.DB) error {
				if err := insertCaption(ctx, conn, "outer"); err != nil {
					return err
				}
				return RunInTransaction(ctx, conn, func(inner context.Context) error {
					if err := insertCaption(inner, conn, "inner"); err != nil {
						return err
					}
					return errAbort
				})
			},
			wantErr:   true,
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := setupTestDB(t)

			err := RunInTransaction(context.Background(), conn, func(ctx context.Context) error {
				if _, ok := GetTx(ctx); !ok {
					t.Error("Expected transaction in context")
				}
				return tt.fn(ctx, conn)
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("RunInTransaction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errAbort) {
				t.Errorf("error = %v, want %v", err, errAbort)
			}

			if got := countRows(t, conn); got != tt.wantCount {
				t.Errorf("row count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestGetExecutor(t *testing.T) {
	conn := setupTestDB(t)
	ctx := context.Background()

	if executor := GetExecutor(ctx, conn); executor != conn {
		t.Error("Expected executor to be the database")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("Failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if executor := GetExecutor(WithTx(ctx, tx), conn); executor != tx {
		t.Error("Expected executor to be the transaction")
	}
}
