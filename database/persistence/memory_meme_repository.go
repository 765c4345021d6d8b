package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/dfryer1193/memestack/database/domain"
)

var _ domain.MemeRepository = (*MemoryMemeRepository)(nil)

// MemoryMemeRepository keeps records in a slice so iteration follows insertion order.
type MemoryMemeRepository struct {
	mu    sync.RWMutex
	memes []domain.Meme
}

func NewMemoryMemeRepository() *MemoryMemeRepository {
	return &MemoryMemeRepository{}
}

func (r *MemoryMemeRepository) CreateMeme(_ context.Context, m domain.Meme) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.memes {
		if existing.ID == m.ID || existing.ImageID == m.ImageID {
			return fmt.Errorf("meme %s with image %s: %w", m.ID, m.ImageID, domain.ErrMemeExists)
		}
	}
	r.memes = append(r.memes, clone(m))
	return nil
}

func (r *MemoryMemeRepository) RetrieveMeme(_ context.Context, memeID string) (domain.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(memeID)
	if i < 0 {
		return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
	}
	return clone(r.memes[i]), nil
}

func (r *MemoryMemeRepository) RetrieveMemes(_ context.Context, skip, limit int) ([]domain.Meme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	memes := []domain.Meme{}
	if skip >= len(r.memes) {
		return memes, nil
	}
	end := skip + min(limit, len(r.memes)-skip)
	for _, m := range r.memes[skip:end] {
		memes = append(memes, clone(m))
	}
	return memes, nil
}

func (r *MemoryMemeRepository) UpdateMeme(_ context.Context, memeID string, update domain.MemeUpdate) (domain.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(memeID)
	if i < 0 {
		return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
	}

	if update.ImageID != nil {
		for j, other := range r.memes {
			if j != i && other.ImageID == *update.ImageID {
				return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeExists)
			}
		}
		r.memes[i].ImageID = *update.ImageID
	}
	if update.Caption != nil {
		caption := *update.Caption
		r.memes[i].Caption = &caption
	}
	return clone(r.memes[i]), nil
}

func (r *MemoryMemeRepository) DeleteMeme(_ context.Context, memeID string) (domain.Meme, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(memeID)
	if i < 0 {
		return domain.Meme{}, fmt.Errorf("meme %s: %w", memeID, domain.ErrMemeNotFound)
	}
	deleted := r.memes[i]
	r.memes = append(r.memes[:i], r.memes[i+1:]...)
	return deleted, nil
}

func (r *MemoryMemeRepository) indexOf(memeID string) int {
	for i, m := range r.memes {
		if m.ID == memeID {
			return i
		}
	}
	return -1
}

func clone(m domain.Meme) domain.Meme {
	if m.Caption != nil {
		caption := *m.Caption
		m.Caption = &caption
	}
	return m
}
