package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/image/domain"
	"github.com/dfryer1193/memestack/shared/httpclient"
	"github.com/rs/zerolog/log"
)

var _ domain.StorageClient = (*StorageServiceClient)(nil)

// StorageServiceClient talks to the Storage Service's /data API.
type StorageServiceClient struct {
	http *httpclient.Client
}

func NewStorageServiceClient(endpoint string, httpClient *http.Client, timeout time.Duration) *StorageServiceClient {
	return &StorageServiceClient{
		http: httpclient.New(endpoint, httpClient, timeout),
	}
}

func (c *StorageServiceClient) CreateData(ctx context.Context, key string, b64Data string) error {
	log.Debug().Str("key", key).Msg("Creating data in storage service")

	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/data/",
		Body:   api.CreateDataRequest{Key: key, B64Data: b64Data},
		Expect: http.StatusCreated,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("Failed to create data in storage service")
		return err
	}
	return nil
}

func (c *StorageServiceClient) RetrieveData(ctx context.Context, key string) (string, error) {
	log.Debug().Str("key", key).Msg("Retrieving data from storage service")

	var resp api.RetrieveDataResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/data/" + url.PathEscape(key),
		Out:    &resp,
		Expect: http.StatusOK,
	})
	if err != nil {
		return "", err
	}
	return resp.B64Data, nil
}

func (c *StorageServiceClient) DeleteData(ctx context.Context, key string) error {
	log.Debug().Str("key", key).Msg("Deleting data from storage service")

	return c.http.Do(ctx, httpclient.Request{
		Method: http.MethodDelete,
		Path:   "/data/" + url.PathEscape(key),
		Expect: http.StatusOK,
	})
}
