package vocabulary

import (
	"github.com/gin-gonic/gin"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/pagination"
	"github.com/lingo-polska/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	vocab := rg.Group("/vocabulary")
	vocab.GET("", h.list)
	vocab.GET("/:id", h.get)

	authed := vocab.Group("", authMW)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	tx, err := h.svc.Query(ListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Level:    c.Query("level"),
		POS:      c.Query("partOfSpeech"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	var entries []models.VocabularyModel
	page, err := pagination.Paginate(tx, pagination.FromContext(c), &entries)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, entries, page)
}

func (h *Handler) get(c *gin.Context) {
	entry, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if entry == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, entry)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateVocabularyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, entry)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateVocabularyDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	entry, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entry == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, entry)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
