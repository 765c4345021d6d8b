package application

import (
	"context"
	"testing"

	"github.com/dfryer1193/memestack/database/domain"
	"github.com/dfryer1193/memestack/database/persistence"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDatabaseService_CRUD(t *testing.T) {
	svc := NewDatabaseService(persistence.NewMemoryMemeRepository())
	ctx := context.Background()

	require.NoError(t, svc.CreateMeme(ctx, domain.Meme{ID: "m1", ImageID: "i1", Caption: strPtr("hi")}))

	got, err := svc.RetrieveMeme(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "i1", got.ImageID)
	assert.Equal(t, "hi", *got.Caption)

	updated, err := svc.UpdateMeme(ctx, "m1", domain.MemeUpdate{Caption: strPtr("yo")})
	require.NoError(t, err)
	assert.Equal(t, "i1", updated.ImageID)
	assert.Equal(t, "yo", *updated.Caption)

	deleted, err := svc.DeleteMeme(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "i1", deleted.ImageID)

	_, err = svc.RetrieveMeme(ctx, "m1")
	assert.ErrorIs(t, err, domain.ErrMemeNotFound)
}

func TestDatabaseService_CreateCollision(t *testing.T) {
	svc := NewDatabaseService(persistence.NewMemoryMemeRepository())
	ctx := context.Background()

	require.NoError(t, svc.CreateMeme(ctx, domain.Meme{ID: "m1", ImageID: "i1"}))

	err := svc.CreateMeme(ctx, domain.Meme{ID: "m1", ImageID: "i2"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
	assert.Equal(t, 409, errs.HTTPStatus(err))
}

func TestDatabaseService_Validation(t *testing.T) {
	svc := NewDatabaseService(persistence.NewMemoryMemeRepository())
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{
			name: "create without meme id",
			call: func() error { return svc.CreateMeme(ctx, domain.Meme{ImageID: "i1"}) },
			want: domain.ErrMissingMemeID,
		},
		{
			name: "create without image id",
			call: func() error { return svc.CreateMeme(ctx, domain.Meme{ID: "m1"}) },
			want: domain.ErrMissingImageID,
		},
		{
			name: "empty update",
			call: func() error {
				_, err := svc.UpdateMeme(ctx, "m1", domain.MemeUpdate{})
				return err
			},
			want: domain.ErrEmptyUpdate,
		},
		{
			name: "blank image id update",
			call: func() error {
				_, err := svc.UpdateMeme(ctx, "m1", domain.MemeUpdate{ImageID: strPtr("")})
				return err
			},
			want: domain.ErrMissingImageID,
		},
		{
			name: "negative skip",
			call: func() error {
				_, err := svc.RetrieveMemes(ctx, -1, 3)
				return err
			},
			want: domain.ErrInvalidPage,
		},
		{
			name: "negative limit",
			call: func() error {
				_, err := svc.RetrieveMemes(ctx, 0, -1)
				return err
			},
			want: domain.ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestDatabaseService_RetrieveMemesPaging(t *testing.T) {
	svc := NewDatabaseService(persistence.NewMemoryMemeRepository())
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, svc.CreateMeme(ctx, domain.Meme{ID: id, ImageID: "img-" + id}))
	}

	memes, err := svc.RetrieveMemes(ctx, 1, 3)
	require.NoError(t, err)
	require.Len(t, memes, 2)
	assert.Equal(t, "b", memes[0].ID)
	assert.Equal(t, "c", memes[1].ID)

	memes, err = svc.RetrieveMemes(ctx, 5, 3)
	require.NoError(t, err)
	assert.Empty(t, memes)
}
