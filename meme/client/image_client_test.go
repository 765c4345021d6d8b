package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageServiceClient(t *testing.T) {
	images := map[string]string{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /images/", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		images["img-1"] = req.B64Data
		writeJSON(w, http.StatusCreated, api.CreateImageResponse{ImageID: "img-1"})
	})
	mux.HandleFunc("GET /images/{id}", func(w http.ResponseWriter, r *http.Request) {
		b64, ok := images[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "not found"})
			return
		}
		writeJSON(w, http.StatusOK, api.RetrieveImageResponse{B64Data: b64})
	})
	mux.HandleFunc("PUT /images/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req api.UpdateImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		images[r.PathValue("id")] = req.B64Data
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /images/{id}", func(w http.ResponseWriter, r *http.Request) {
		delete(images, r.PathValue("id"))
		w.WriteHeader(http.StatusOK)
	})
	srv := newTestServer(t, mux)
	c := NewImageServiceClient(srv.URL, srv.Client(), time.Second)
	ctx := context.Background()

	id, err := c.CreateImage(ctx, "YQ==")
	require.NoError(t, err)
	assert.Equal(t, "img-1", id)

	require.NoError(t, c.UpdateImage(ctx, id, "Yg=="))

	b64, err := c.RetrieveImage(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Yg==", b64)

	require.NoError(t, c.DeleteImage(ctx, id))

	_, err = c.RetrieveImage(ctx, id)
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
