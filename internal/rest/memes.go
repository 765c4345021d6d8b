package rest

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/meme/domain"
	"github.com/gin-gonic/gin"
)

// MemeService is the public meme service's application surface.
type MemeService interface {
	CreateMeme(ctx context.Context, m domain.Meme) (domain.Meme, error)
	RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error)
	RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error)
	UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) error
	DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error)
}

type memeHandler struct {
	svc MemeService
}

// NewMemesApi registers the public meme routes under /memes.
func NewMemesApi(router *gin.Engine, svc MemeService) {
	h := &memeHandler{svc: svc}

	memes := router.Group("memes")
	{
		memes.POST("/", h.CreateMeme)
		memes.GET("/", h.RetrieveMemes)
		memes.GET("/:memeId", h.RetrieveMeme)
		memes.PUT("/:memeId", h.UpdateMeme)
		memes.DELETE("/:memeId", h.DeleteMeme)
	}
}

func toMemeResponse(m domain.Meme) api.MemeResponse {
	return api.MemeResponse{
		B64Data: m.B64Data,
		Caption: m.Caption,
	}
}

func (h *memeHandler) CreateMeme(c *gin.Context) {
	var req api.CreateMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.svc.CreateMeme(c.Request.Context(), domain.Meme{
		ID:      req.MemeID,
		B64Data: req.B64Data,
		Caption: req.Caption,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreateMemeResponse{MemeID: m.ID})
}

func (h *memeHandler) RetrieveMeme(c *gin.Context) {
	m, err := h.svc.RetrieveMeme(c.Request.Context(), c.Param("memeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMemeResponse(m))
}

func (h *memeHandler) RetrieveMemes(c *gin.Context) {
	page, ok := bindPage(c)
	if !ok {
		return
	}

	memes, err := h.svc.RetrieveMemes(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]api.MemeResponse, 0, len(memes))
	for _, m := range memes {
		resp = append(resp, toMemeResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateMeme answers 422 when the body carries nothing to change.
func (h *memeHandler) UpdateMeme(c *gin.Context) {
	var req api.UpdateMemeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !isEmptyBody(err) {
		badRequest(c, err)
		return
	}

	var update domain.MemeUpdate
	if req.B64Data != nil {
		update.B64Data = *req.B64Data
	}
	if req.Caption != nil {
		update.Caption = *req.Caption
	}

	if err := h.svc.UpdateMeme(c.Request.Context(), c.Param("memeId"), update); err != nil {
		if errors.Is(err, domain.ErrEmptyUpdate) {
			respondErrorStatus(c, http.StatusUnprocessableEntity, err)
			return
		}
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *memeHandler) DeleteMeme(c *gin.Context) {
	m, err := h.svc.DeleteMeme(c.Request.Context(), c.Param("memeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.DeleteMemeResponse{MemeID: m.ID, Caption: m.Caption})
}

func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}
