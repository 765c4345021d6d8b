package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dfryer1193/memestack/database/domain"
	"github.com/dfryer1193/memestack/shared/db"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var _ domain.MemeRepository = (*SQLiteMemeRepository)(nil)

// SQLiteMemeRepository implements domain.MemeRepository on the memes table created by the
// sqlite migrations.
type SQLiteMemeRepository struct {
	db *sql.DB
}

func NewSQLiteMemeRepository(db *sql.DB) *SQLiteMemeRepository {
	return &SQLiteMemeRepository{
		db: db,
	}
}

type memeRow struct {
	MemeID  string
	ImageID string
	Caption sql.NullString
}

func (r memeRow) toDomain() domain.Meme {
	m := domain.Meme{
		ID:      r.MemeID,
		ImageID: r.ImageID,
	}
	if r.Caption.Valid {
		caption := r.Caption.String
		m.Caption = &caption
	}
	return m
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

const insertMemeQuery = `
	INSERT INTO memes (meme_id, image_id, caption)
	VALUES (?, ?, ?)
`

func (r *SQLiteMemeRepository) CreateMeme(ctx context.Context, m domain.Meme) error {
	executor := db.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, insertMemeQuery, m.ID, m.ImageID, nullString(m.Caption))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("meme %s with image %s: %w", m.ID, m.ImageID, domain.ErrMemeExists)
		}
		return fmt.Errorf("failed to insert meme: %w", err)
	}
	return nil
}

const getMemeQuery = `
	SELECT meme_id, image_id, caption
	FROM memes
	WHERE meme_id = ?
`

func (r *SQLiteMemeRepository) RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	return r.getMeme(ctx, db.GetExecutor(ctx, r.db), memeID)
}

func (r *SQLiteMemeRepository) getMeme(ctx context.Context, executor db.Executor, memeID string) (domain.Meme, error) {
	var row memeRow
	err := executor.QueryRowContext(ctx, getMemeQuery, memeID).Scan(
		&row.MemeID,
		&row.ImageID,
		&row.Caption,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
	}

	if err != nil {
		return domain.Meme{}, fmt.Errorf("failed to get meme: %w", err)
	}

	return row.toDomain(), nil
}

const listMemesQuery = `
	SELECT meme_id, image_id, caption
	FROM memes
	ORDER BY seq ASC
	LIMIT ? OFFSET ?
`

func (r *SQLiteMemeRepository) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error) {
	executor := db.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, listMemesQuery, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query memes: %w", err)
	}
	defer rows.Close()

	memes := []domain.Meme{}
	for rows.Next() {
		var row memeRow
		if err := rows.Scan(&row.MemeID, &row.ImageID, &row.Caption); err != nil {
			return nil, fmt.Errorf("failed to scan meme: %w", err)
		}
		memes = append(memes, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memes: %w", err)
	}

	return memes, nil
}

const updateMemeQuery = `
	UPDATE memes
	SET image_id = COALESCE(?, image_id),
		caption = COALESCE(?, caption)
	WHERE meme_id = ?
`

// UpdateMeme applies the non-nil fields of update and returns the resulting record.
func (r *SQLiteMemeRepository) UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) (domain.Meme, error) {
	var updated domain.Meme
	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)
		result, err := executor.ExecContext(txCtx, updateMemeQuery,
			nullString(update.ImageID),
			nullString(update.Caption),
			memeID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeExists)
			}
			return fmt.Errorf("failed to update meme: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
		}

		updated, err = r.getMeme(txCtx, executor, memeID)
		return err
	})
	if err != nil {
		return domain.Meme{}, err
	}
	return updated, nil
}

const deleteMemeQuery = `DELETE FROM memes WHERE meme_id = ?`

// DeleteMeme removes the record and returns it as it was before deletion.
func (r *SQLiteMemeRepository) DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	var deleted domain.Meme
	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		var err error
		deleted, err = r.getMeme(txCtx, executor, memeID)
		if err != nil {
			return err
		}

		if _, err := executor.ExecContext(txCtx, deleteMemeQuery, memeID); err != nil {
			return fmt.Errorf("failed to delete meme: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Meme{}, err
	}
	return deleted, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sqliteErr.Error(), "UNIQUE")
}
