package client

import (
	"context"

	dbapp "github.com/dfryer1193/memestack/database/application"
	dbdomain "github.com/dfryer1193/memestack/database/domain"
	imageapp "github.com/dfryer1193/memestack/image/application"
	imagedomain "github.com/dfryer1193/memestack/image/domain"
	"github.com/dfryer1193/memestack/meme/domain"
)

var (
	_ domain.ImageClient = (*LocalImageClient)(nil)
	_ domain.DBClient    = (*LocalDBClient)(nil)
)

// LocalImageClient calls an in-process ImageService instead of going over HTTP.
type LocalImageClient struct {
	svc *imageapp.ImageService
}

func NewLocalImageClient(svc *imageapp.ImageService) *LocalImageClient {
	return &LocalImageClient{svc: svc}
}

func (c *LocalImageClient) CreateImage(ctx context.Context, b64Data string) (string, error) {
	img, err := c.svc.CreateImage(ctx, b64Data)
	if err != nil {
		return "", err
	}
	return img.ID, nil
}

func (c *LocalImageClient) RetrieveImage(ctx context.Context, imageID string) (string, error) {
	img, err := c.svc.RetrieveImage(ctx, imageID)
	if err != nil {
		return "", err
	}
	return img.B64Data, nil
}

func (c *LocalImageClient) UpdateImage(ctx context.Context, imageID string, b64Data string) error {
	return c.svc.UpdateImage(ctx, imagedomain.Image{ID: imageID, B64Data: b64Data})
}

func (c *LocalImageClient) DeleteImage(ctx context.Context, imageID string) error {
	return c.svc.DeleteImage(ctx, imageID)
}

// LocalDBClient calls an in-process DatabaseService instead of going over HTTP.
type LocalDBClient struct {
	svc *dbapp.DatabaseService
}

func NewLocalDBClient(svc *dbapp.DatabaseService) *LocalDBClient {
	return &LocalDBClient{svc: svc}
}

func (c *LocalDBClient) CreateMeme(ctx context.Context, m domain.DBMeme) error {
	return c.svc.CreateMeme(ctx, dbdomain.Meme{ID: m.ID, ImageID: m.ImageID, Caption: m.Caption})
}

func (c *LocalDBClient) RetrieveMeme(ctx context.Context, memeID string) (domain.DBMeme, error) {
	m, err := c.svc.RetrieveMeme(ctx, memeID)
	if err != nil {
		return domain.DBMeme{}, err
	}
	return fromRecord(m), nil
}

func (c *LocalDBClient) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.DBMeme, error) {
	records, err := c.svc.RetrieveMemes(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	memes := make([]domain.DBMeme, 0, len(records))
	for _, m := range records {
		memes = append(memes, fromRecord(m))
	}
	return memes, nil
}

func (c *LocalDBClient) UpdateMeme(ctx context.Context, memeID string, update domain.DBMemeUpdate) error {
	_, err := c.svc.UpdateMeme(ctx, memeID, dbdomain.MemeUpdate{ImageID: update.ImageID, Caption: update.Caption})
	return err
}

func (c *LocalDBClient) DeleteMeme(ctx context.Context, memeID string) (domain.DBMeme, error) {
	m, err := c.svc.DeleteMeme(ctx, memeID)
	if err != nil {
		return domain.DBMeme{}, err
	}
	return fromRecord(m), nil
}

func fromRecord(m dbdomain.Meme) domain.DBMeme {
	return domain.DBMeme{ID: m.ID, ImageID: m.ImageID, Caption: m.Caption}
}
