package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/meme/domain"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/dfryer1193/memestack/shared/httpclient"
	"github.com/rs/zerolog/log"
)

var _ domain.DBClient = (*DBServiceClient)(nil)

// DBServiceClient talks to the Database Service's /memes API.
type DBServiceClient struct {
	http *httpclient.Client
}

func NewDBServiceClient(endpoint string, httpClient *http.Client, timeout time.Duration) *DBServiceClient {
	return &DBServiceClient{
		http: httpclient.New(endpoint, httpClient, timeout),
	}
}

func (c *DBServiceClient) CreateMeme(ctx context.Context, m domain.DBMeme) error {
	return c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/memes/",
		Body: api.CreateDBMemeRequest{
			MemeID:  m.ID,
			ImageID: m.ImageID,
			Caption: m.Caption,
		},
		Expect: http.StatusCreated,
	})
}

func (c *DBServiceClient) RetrieveMeme(ctx context.Context, memeID string) (domain.DBMeme, error) {
	var resp api.DBMemeResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   memePath(memeID),
		Out:    &resp,
		Expect: http.StatusOK,
	})
	if err != nil {
		return domain.DBMeme{}, err
	}
	return toDBMeme(resp), nil
}

// RetrieveMemes treats the database service's 404 for an empty page as an empty result.
func (c *DBServiceClient) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.DBMeme, error) {
	var resp []api.DBMemeResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/memes/",
		Query: url.Values{
			"skip":  {strconv.Itoa(skip)},
			"limit": {strconv.Itoa(limit)},
		},
		Out:    &resp,
		Expect: http.StatusOK,
	})
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Debug().Int("skip", skip).Int("limit", limit).Msg("Database service has no memes in range")
			return []domain.DBMeme{}, nil
		}
		return nil, err
	}

	memes := make([]domain.DBMeme, 0, len(resp))
	for _, r := range resp {
		memes = append(memes, toDBMeme(r))
	}
	return memes, nil
}

func (c *DBServiceClient) UpdateMeme(ctx context.Context, memeID string, update domain.DBMemeUpdate) error {
	return c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPut,
		Path:   memePath(memeID),
		Body: api.UpdateDBMemeRequest{
			ImageID: update.ImageID,
			Caption: update.Caption,
		},
		Expect: http.StatusOK,
	})
}

func (c *DBServiceClient) DeleteMeme(ctx context.Context, memeID string) (domain.DBMeme, error) {
	var resp api.DBMemeResponse
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodDelete,
		Path:   memePath(memeID),
		Out:    &resp,
		Expect: http.StatusOK,
	})
	if err != nil {
		return domain.DBMeme{}, err
	}
	return toDBMeme(resp), nil
}

func memePath(memeID string) string {
	return "/memes/" + url.PathEscape(memeID)
}

func toDBMeme(r api.DBMemeResponse) domain.DBMeme {
	return domain.DBMeme{
		ID:      r.MemeID,
		ImageID: r.ImageID,
		Caption: r.Caption,
	}
}
