package validator

import (
	"github.com/gin-gonic/gin"
	"github.com/lingo-polska/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	val := rg.Group("/validate")
	val.POST("", h.validate)

	authed := val.Group("", authMW)
	authed.GET("/models", h.models)
	authed.POST("/test-connection", h.testConnection)
}

func (h *Handler) validate(c *gin.Context) {
	var dto ValidateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.Validate(c.Request.Context(), dto.Text)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *Handler) models(c *gin.Context) {
	models, err := h.svc.ListModels(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, models)
}

func (h *Handler) testConnection(c *gin.Context) {
	if err := h.svc.TestConnection(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true, "message": "connection ok"})
}
