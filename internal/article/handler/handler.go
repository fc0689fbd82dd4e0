package handler

import (
	"errors"
	"net/http"

	"github.com/articlesvc/articles/internal/article"
	"github.com/articlesvc/articles/internal/article/service"
	"github.com/articlesvc/articles/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RegisterArticleRoutes mounts the article CRUD endpoints on r.
func RegisterArticleRoutes(r gin.IRouter, svc service.Service) {
	h := &articleHandler{svc: svc}
	r.POST("/articles", h.create)
	r.GET("/articles", h.list)
	r.PUT("/articles/:id", h.update)
	r.DELETE("/articles/:id", h.remove)
}

type articleHandler struct {
	svc service.Service
}

func (h *articleHandler) create(c *gin.Context) {
	var in article.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *articleHandler) list(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *articleHandler) update(c *gin.Context) {
	var in article.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *articleHandler) remove(c *gin.Context) {
	a, err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// statusFor maps error kinds to HTTP statuses.
func statusFor(k article.Kind) int {
	switch k {
	case article.KindNotFound:
		return http.StatusNotFound
	case article.KindValidation, article.KindCapacity, article.KindPersistence:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, err error) {
	var e *article.Error
	if !errors.As(err, &e) {
		logger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if e.Kind == article.KindPersistence || e.Kind == article.KindCapacity {
		logger.Warnf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, e.Kind, e)
	}
	c.JSON(statusFor(e.Kind), gin.H{"error": e.Message})
}
