package rest

import (
	"context"
	"net/http"

	"github.com/dfryer1193/memestack/api"
	"github.com/gin-gonic/gin"
)

// DataService is the storage service's application surface.
type DataService interface {
	CreateData(ctx context.Context, key string, b64Data string) error
	RetrieveData(ctx context.Context, key string) (string, error)
	DeleteData(ctx context.Context, key string) error
}

type dataHandler struct {
	svc DataService
}

// NewDataApi registers the storage service routes under /data.
func NewDataApi(router *gin.Engine, svc DataService) {
	h := &dataHandler{svc: svc}

	data := router.Group("data")
	{
		data.POST("/", h.CreateData)
		data.GET("/:key", h.RetrieveData)
		data.DELETE("/:key", h.DeleteData)
	}
}

func (h *dataHandler) CreateData(c *gin.Context) {
	var req api.CreateDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.svc.CreateData(c.Request.Context(), req.Key, req.B64Data); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, api.CreateDataResponse{Key: req.Key})
}

func (h *dataHandler) RetrieveData(c *gin.Context) {
	b64Data, err := h.svc.RetrieveData(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.RetrieveDataResponse{B64Data: b64Data})
}

func (h *dataHandler) DeleteData(c *gin.Context) {
	if err := h.svc.DeleteData(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
