package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/meme/domain"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newTestServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestDBServiceClient_CreateMeme(t *testing.T) {
	var got api.CreateDBMemeRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /memes/", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.MemeID == "taken" {
			writeJSON(w, http.StatusConflict, api.ErrorResponse{Error: "exists"})
			return
		}
		writeJSON(w, http.StatusCreated, api.DBMemeResponse{MemeID: got.MemeID})
	})
	srv := newTestServer(t, mux)
	c := NewDBServiceClient(srv.URL, srv.Client(), time.Second)
	ctx := context.Background()

	err := c.CreateMeme(ctx, domain.DBMeme{ID: "m1", ImageID: "i1", Caption: strPtr("hi")})
	require.NoError(t, err)
	assert.Equal(t, "m1", got.MemeID)
	assert.Equal(t, "i1", got.ImageID)
	assert.Equal(t, "hi", *got.Caption)

	err = c.CreateMeme(ctx, domain.DBMeme{ID: "taken", ImageID: "i2"})
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestDBServiceClient_RetrieveMemes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /memes/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("skip") != "0" {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "no memes"})
			return
		}
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		writeJSON(w, http.StatusOK, []api.DBMemeResponse{
			{MemeID: "a", ImageID: "ia"},
			{MemeID: "b", ImageID: "ib", Caption: strPtr("bee")},
		})
	})
	srv := newTestServer(t, mux)
	c := NewDBServiceClient(srv.URL, srv.Client(), time.Second)
	ctx := context.Background()

	memes, err := c.RetrieveMemes(ctx, 0, 2)
	require.NoError(t, err)
	require.Len(t, memes, 2)
	assert.Equal(t, domain.DBMeme{ID: "a", ImageID: "ia"}, memes[0])
	assert.Equal(t, "bee", *memes[1].Caption)

	memes, err = c.RetrieveMemes(ctx, 10, 2)
	require.NoError(t, err, "an empty page is not an error")
	assert.NotNil(t, memes)
	assert.Empty(t, memes)
}

func TestDBServiceClient_RetrieveUpdateDelete(t *testing.T) {
	record := api.DBMemeResponse{MemeID: "m1", ImageID: "i1", Caption: strPtr("old")}
	var patch api.UpdateDBMemeRequest

	mux := http.NewServeMux()
	mux.HandleFunc("GET /memes/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "m1" {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "not found"})
			return
		}
		writeJSON(w, http.StatusOK, record)
	})
	mux.HandleFunc("PUT /memes/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		writeJSON(w, http.StatusOK, record)
	})
	mux.HandleFunc("DELETE /memes/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, record)
	})
	srv := newTestServer(t, mux)
	c := NewDBServiceClient(srv.URL, srv.Client(), time.Second)
	ctx := context.Background()

	got, err := c.RetrieveMeme(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "i1", got.ImageID)

	_, err = c.RetrieveMeme(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	require.NoError(t, c.UpdateMeme(ctx, "m1", domain.DBMemeUpdate{Caption: strPtr("new")}))
	assert.Nil(t, patch.ImageID)
	require.NotNil(t, patch.Caption)
	assert.Equal(t, "new", *patch.Caption)

	deleted, err := c.DeleteMeme(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "i1", deleted.ImageID)
}
