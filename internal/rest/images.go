package rest

import (
	"context"
	"net/http"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/image/domain"
	"github.com/gin-gonic/gin"
)

// ImageService is the image service's application surface.
type ImageService interface {
	CreateImage(ctx context.Context, b64Data string) (domain.Image, error)
	RetrieveImage(ctx context.Context, imageID string) (domain.Image, error)
	UpdateImage(ctx context.Context, img domain.Image) error
	DeleteImage(ctx context.Context, imageID string) error
}

type imageHandler struct {
	svc ImageService
}

// NewImagesApi registers the image service routes under /images.
func NewImagesApi(router *gin.Engine, svc ImageService) {
	h := &imageHandler{svc: svc}

	images := router.Group("images")
	{
		images.POST("/", h.CreateImage)
		images.GET("/:imageId", h.RetrieveImage)
		images.PUT("/:imageId", h.UpdateImage)
		images.DELETE("/:imageId", h.DeleteImage)
	}
}

func (h *imageHandler) CreateImage(c *gin.Context) {
	var req api.CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	img, err := h.svc.CreateImage(c.Request.Context(), req.B64Data)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreateImageResponse{ImageID: img.ID})
}

func (h *imageHandler) RetrieveImage(c *gin.Context) {
	img, err := h.svc.RetrieveImage(c.Request.Context(), c.Param("imageId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.RetrieveImageResponse{B64Data: img.B64Data})
}

func (h *imageHandler) UpdateImage(c *gin.Context) {
	var req api.UpdateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	img := domain.Image{ID: c.Param("imageId"), B64Data: req.B64Data}
	if err := h.svc.UpdateImage(c.Request.Context(), img); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *imageHandler) DeleteImage(c *gin.Context) {
	if err := h.svc.DeleteImage(c.Request.Context(), c.Param("imageId")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
