package application

import (
	"context"
	"errors"
	"testing"

	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/dfryer1193/memestack/storage/domain"
	"github.com/dfryer1193/memestack/storage/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Ensure(context.Context) error { return f.err }
func (f failingStore) Put(context.Context, string, []byte) error { return f.err }
func (f failingStore) Get(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingStore) Delete(context.Context, string) error { return f.err }

func TestStorageService_RoundTrip(t *testing.T) {
	store := persistence.NewMemoryBlobStore()
	svc := NewStorageService(store)
	ctx := context.Background()

	require.NoError(t, svc.CreateData(ctx, "greeting", "aGVsbG8="))

	raw, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), raw, "payload is stored decoded")

	b64, err := svc.RetrieveData(ctx, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "aGVsbG8=", b64)

	require.NoError(t, svc.DeleteData(ctx, "greeting"))
	_, err = svc.RetrieveData(ctx, "greeting")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStorageService_CreateOverwrites(t *testing.T) {
	svc := NewStorageService(persistence.NewMemoryBlobStore())
	ctx := context.Background()

	require.NoError(t, svc.CreateData(ctx, "k", "Zmlyc3Q="))
	require.NoError(t, svc.CreateData(ctx, "k", "c2Vjb25k"))

	b64, err := svc.RetrieveData(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "c2Vjb25k", b64)
}

func TestStorageService_CreateValidation(t *testing.T) {
	svc := NewStorageService(persistence.NewMemoryBlobStore())
	ctx := context.Background()

	tests := []struct {
		name    string
		key     string
		payload string
		want    error
	}{
		{name: "invalid base64", key: "k", payload: "not base64!", want: domain.ErrInvalidPayload},
		{name: "empty key", key: "", payload: "aGVsbG8=", want: domain.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.CreateData(ctx, tt.key, tt.payload)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, errs.ErrValidation)
		})
	}
}

func TestStorageService_NotFound(t *testing.T) {
	svc := NewStorageService(persistence.NewMemoryBlobStore())
	ctx := context.Background()

	_, err := svc.RetrieveData(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteData(ctx, "missing"), errs.ErrNotFound)
}

func TestStorageService_BackendErrors(t *testing.T) {
	backendErr := errors.New("s3 unavailable")
	svc := NewStorageService(failingStore{err: backendErr})
	ctx := context.Background()

	err := svc.CreateData(ctx, "k", "aGVsbG8=")
	assert.ErrorIs(t, err, backendErr)

	_, err = svc.RetrieveData(ctx, "k")
	assert.ErrorIs(t, err, backendErr)
	assert.NotErrorIs(t, err, errs.ErrNotFound)

	assert.ErrorIs(t, svc.DeleteData(ctx, "k"), backendErr)
}
