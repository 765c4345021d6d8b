package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/database/domain"
	"github.com/gin-gonic/gin"
)

// RecordService is the database service's application surface.
type RecordService interface {
	CreateMeme(ctx context.Context, m domain.Meme) error
	RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error)
	RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error)
	UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) (domain.Meme, error)
	DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error)
}

var errNoMemesInRange = errors.New("no memes found in the requested range")

type recordHandler struct {
	svc RecordService
}

// NewRecordsApi registers the database service routes under /memes.
func NewRecordsApi(router *gin.Engine, svc RecordService) {
	h := &recordHandler{svc: svc}

	memes := router.Group("memes")
	{
		memes.POST("/", h.CreateMeme)
		memes.GET("/", h.RetrieveMemes)
		memes.GET("/:memeId", h.RetrieveMeme)
		memes.PUT("/:memeId", h.UpdateMeme)
		memes.DELETE("/:memeId", h.DeleteMeme)
	}
}

func toRecordResponse(m domain.Meme) api.DBMemeResponse {
	return api.DBMemeResponse{
		MemeID:  m.ID,
		ImageID: m.ImageID,
		Caption: m.Caption,
	}
}

func (h *recordHandler) CreateMeme(c *gin.Context) {
	var req api.CreateDBMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	m := domain.Meme{ID: req.MemeID, ImageID: req.ImageID, Caption: req.Caption}
	if err := h.svc.CreateMeme(c.Request.Context(), m); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRecordResponse(m))
}

func (h *recordHandler) RetrieveMeme(c *gin.Context) {
	m, err := h.svc.RetrieveMeme(c.Request.Context(), c.Param("memeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(m))
}

// RetrieveMemes answers 404 when the page is empty.
func (h *recordHandler) RetrieveMemes(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	memes, err := h.svc.RetrieveMemes(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if len(memes) == 0 {
		respondErrorStatus(c, http.StatusNotFound, errNoMemesInRange)
		return
	}

	resp := make([]api.DBMemeResponse, 0, len(memes))
	for _, m := range memes {
		resp = append(resp, toRecordResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *recordHandler) UpdateMeme(c *gin.Context) {
	var req api.UpdateDBMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !isEmptyBody(err) {
		badRequest(c, err)
		return
	}

	update := domain.MemeUpdate{ImageID: req.ImageID, Caption: req.Caption}
	m, err := h.svc.UpdateMeme(c.Request.Context(), c.Param("memeId"), update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(m))
}

func (h *recordHandler) DeleteMeme(c *gin.Context) {
	m, err := h.svc.DeleteMeme(c.Request.Context(), c.Param("memeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRecordResponse(m))
}
