package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/drewfead/bms-booker/internal/tools"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const invocationHTTPHeader = "X-Invocation-Id"

// NewHTTPHandler serves the tools as JSON:
//
//	GET  /healthz
//	GET  /tools          tool names and descriptions
//	POST /tools/:name    body is the tool's argument object
//
// /tools routes require "Authorization: Bearer <token>".
func NewHTTPHandler(registry *tools.Registry, token string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h := &toolHandler{registry: registry}
	g := r.Group("/tools", requireBearer(token))
	g.GET("", h.list)
	g.POST("/:name", h.call)
	return r
}

type toolHandler struct {
	registry *tools.Registry
}

func (h *toolHandler) list(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.registry.Tools()})
}

func (h *toolHandler) call(c *gin.Context) {
	name := c.Param("name")
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read body: " + err.Error()})
		return
	}
	id := uuid.NewString()
	c.Header(invocationHTTPHeader, id)
	ctx := tools.WithInvocationID(c.Request.Context(), id)

	result, err := h.registry.Call(ctx, name, body)
	if err != nil {
		c.JSON(HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func requireBearer(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !bearerOK(c.GetHeader("Authorization"), token) {
			c.AbortWithStatusJSON(HTTPStatus(ErrUnauthenticated), gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
