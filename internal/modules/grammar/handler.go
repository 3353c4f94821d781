package grammar

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
	grammar := rg.Group("/grammar")
	grammar.GET("", h.list)
	grammar.GET("/:slug", h.get)

	authed := grammar.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:slug", h.update)
	authed.PATCH("/:slug", h.update)
	authed.DELETE("/:slug", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	topics, err := h.svc.List(c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, topics)
}

func (h *Handler) get(c *gin.Context) {
	topic, err := h.svc.GetBySlug(c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if topic == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, topic)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateTopicDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	topic, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, topic)
}

// update and delete address topics by id, reusing the :slug segment so the
// public and admin routes share one group.
func (h *Handler) update(c *gin.Context) {
	var dto UpdateTopicDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	topic, err := h.svc.Update(c.Param("slug"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if topic == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, topic)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("slug")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
