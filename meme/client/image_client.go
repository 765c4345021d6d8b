package client

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/meme/domain"
	"github.com/dfryer1193/memestack/shared/httpclient"
	"github.com/rs/zerolog/log"
)

var _ domain.ImageClient = (*ImageServiceClient)(nil)

// ImageServiceClient talks to the Image Service's /images API.
type ImageServiceClient struct {
	http *httpclient.Client
}

func NewImageServiceClient(endpoint string, httpClient *http.Client, timeout time.Duration) *ImageServiceClient {
	return &ImageServiceClient{
		http: httpclient.New(endpoint, httpClient, timeout),
	}
}

func (c *ImageServiceClient) CreateImage(ctx context.Context, b64Data string) (string, error) {
	var resp api.CreateImageResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/images/",
		Body:   api.CreateImageRequest{B64Data: b64Data},
		Out:    &resp,
		Expect: http.StatusCreated,
	})
	if err != nil {
		return "", err
	}

	log.Debug().Str("image_id", resp.ImageID).Msg("Image service created image")
	return resp.ImageID, nil
}

func (c *ImageServiceClient) RetrieveImage(ctx context.Context, imageID string) (string, error) {
	var resp api.RetrieveImageResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   imagePath(imageID),
		Out:    &resp,
		Expect: http.StatusOK,
	})
	if err != nil {
		return "", err
	}
	return resp.B64Data, nil
}

func (c *ImageServiceClient) UpdateImage(ctx context.Context, imageID string, b64Data string) error {
	return c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   imagePath(imageID),
		Body:   api.UpdateImageRequest{B64Data: b64Data},
		Expect: http.StatusOK,
	})
}

func (c *ImageServiceClient) DeleteImage(ctx context.Context, imageID string) error {
	return c.http.Do(ctx, httpclient.Request{
		Method: http.MethodDelete,
		Path:   imagePath(imageID),
		Expect: http.StatusOK,
	})
}

func imagePath(imageID string) string {
	return "/images/" + url.PathEscape(imageID)
}
