package rest

import (
	"net/http"

	"github.com/dfryer1193/memestack/api"
	"github.com/dfryer1193/memestack/internal/middleware"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/gin-gonic/gin"
)

// NewRouter returns an engine with recovery, request ids, access logging and /healthz.
// Each service registers its resource routes on top.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

// pageQuery is the skip/limit pair accepted by every list endpoint.
type pageQuery struct {
	Skip  int `form:"skip,default=0"`
	Limit int `form:"limit,default=3"`
}

func bindPage(c *gin.Context) (pageQuery, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return pageQuery{}, false
	}
	return q, true
}

func badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
}

// respondError maps err to its status code and writes it as an api.ErrorResponse.
func respondError(c *gin.Context, err error) {
	respondErrorStatus(c, errs.HTTPStatus(err), err)
}

func respondErrorStatus(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, api.ErrorResponse{Error: err.Error()})
}
