package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/memestack/database/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ domain.MemeRepository = (*PostgresMemeRepository)(nil)

const pgUniqueViolation = "23505"

// PostgresMemeRepository implements domain.MemeRepository on the memes table created by
// postgres.EnsureSchema.
type PostgresMemeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMemeRepository(pool *pgxpool.Pool) *PostgresMemeRepository {
	return &PostgresMemeRepository{pool: pool}
}

func (r *PostgresMemeRepository) CreateMeme(ctx context.Context, m domain.Meme) error {
	query := `
INSERT INTO memes (meme_id, image_id, caption)
VALUES ($1, $2, $3)
`
	if _, err := r.pool.Exec(ctx, query, m.ID, m.ImageID, m.Caption); err != nil {
		if isPgUniqueViolation(err) {
			return fmt.Errorf("meme %s with image %s: %w", m.ID, m.ImageID, domain.ErrMemeExists)
		}
		return fmt.Errorf("failed to insert meme: %w", err)
	}
	return nil
}

func (r *PostgresMemeRepository) RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	query := `
SELECT meme_id, image_id, caption
FROM memes
WHERE meme_id = $1
`
	m, err := scanMeme(r.pool.QueryRow(ctx, query, memeID))
	if err != nil {
		return domain.Meme{}, notFoundOr(err, memeID, "get")
	}
	return m, nil
}

func (r *PostgresMemeRepository) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error) {
	query := `
SELECT meme_id, image_id, caption
FROM memes
ORDER BY seq ASC
LIMIT $1 OFFSET $2
`
	rows, err := r.pool.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to query memes: %w", err)
	}
	defer rows.Close()

	memes := []domain.Meme{}
	for rows.Next() {
		m, err := scanMeme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan meme: %w", err)
		}
		memes = append(memes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memes: %w", err)
	}
	return memes, nil
}

func (r *PostgresMemeRepository) UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) (domain.Meme, error) {
	query := `
UPDATE memes
SET image_id = COALESCE($2, image_id),
    caption = COALESCE($3, caption)
WHERE meme_id = $1
RETURNING meme_id, image_id, caption
`
	m, err := scanMeme(r.pool.QueryRow(ctx, query, memeID, update.ImageID, update.Caption))
	if err != nil {
		if isPgUniqueViolation(err) {
			return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeExists)
		}
		return domain.Meme{}, notFoundOr(err, memeID, "update")
	}
	return m, nil
}

func (r *PostgresMemeRepository) DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	query := `
DELETE FROM memes
WHERE meme_id = $1
RETURNING meme_id, image_id, caption
`
	m, err := scanMeme(r.pool.QueryRow(ctx, query, memeID))
	if err != nil {
		return domain.Meme{}, notFoundOr(err, memeID, "delete")
	}
	return m, nil
}

func scanMeme(row pgx.Row) (domain.Meme, error) {
	var m domain.Meme
	if err := row.Scan(&m.ID, &m.ImageID, &m.Caption); err != nil {
		return domain.Meme{}, err
	}
	return m, nil
}

func notFoundOr(err error, memeID, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
	}
	return fmt.Errorf("failed to %s meme: %w", op, err)
}

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
