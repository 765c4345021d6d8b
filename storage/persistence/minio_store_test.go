package persistence

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dfryer1193/memestack/storage/domain"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	buckets map[string]bool
	objects map[string][]byte
	failAll error
}

func newFakeObjectAPI() *fakeObjectAPI {
	return &fakeObjectAPI{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
}

func (f *fakeObjectAPI) BucketExists(_ context.Context, bucket string) (bool, error) {
	if f.failAll != nil {
		return false, f.failAll
	}
	return f.buckets[bucket], nil
}

func (f *fakeObjectAPI) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.buckets[bucket] = true
	return nil
}

func (f *fakeObjectAPI) PutObject(_ context.Context, _, key string, r io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.failAll != nil {
		return minio.UploadInfo{}, f.failAll
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[key] = data
	return minio.UploadInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjectAPI) StatObject(_ context.Context, _, key string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	if f.failAll != nil {
		return minio.ObjectInfo{}, f.failAll
	}
	data, ok := f.objects[key]
	if !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Key: key}
	}
	return minio.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeObjectAPI) GetObject(context.Context, string, string, minio.GetObjectOptions) (*minio.Object, error) {
	return nil, errors.New("not supported by fake")
}

func (f *fakeObjectAPI) RemoveObject(_ context.Context, _, key string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, key)
	return nil
}

func TestMinIOBlobStore_Ensure(t *testing.T) {
	api := newFakeObjectAPI()
	store := &MinIOBlobStore{client: api, bucket: "memes"}

	require.NoError(t, store.Ensure(context.Background()))
	assert.True(t, api.buckets["memes"])

	// Existing bucket is left alone.
	require.NoError(t, store.Ensure(context.Background()))
}

func TestMinIOBlobStore_PutDelete(t *testing.T) {
	api := newFakeObjectAPI()
	store := &MinIOBlobStore{client: api, bucket: "memes"}
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "img-1", []byte{0x89, 0x50, 0x4e, 0x47}))
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, api.objects["img-1"])

	require.NoError(t, store.Delete(ctx, "img-1"))
	assert.NotContains(t, api.objects, "img-1")
}

func TestMinIOBlobStore_MissingKey(t *testing.T) {
	store := &MinIOBlobStore{client: newFakeObjectAPI(), bucket: "memes"}
	ctx := context.Background()

	_, err := store.Get(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "nope"), domain.ErrKeyNotFound)
}

func TestMinIOBlobStore_BackendError(t *testing.T) {
	api := newFakeObjectAPI()
	api.failAll = errors.New("connection refused")
	store := &MinIOBlobStore{client: api, bucket: "memes"}
	ctx := context.Background()

	err := store.Put(ctx, "k", []byte("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)

	_, err = store.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)

	assert.Error(t, store.Ensure(ctx))
}
