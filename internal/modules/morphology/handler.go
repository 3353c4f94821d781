package morphology

import (
	"github.com/gin-gonic/gin"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	infl := rg.Group("/inflections")
	infl.GET("/lemmas", h.listLemmas)
	infl.GET("/stats", h.stats)
	infl.POST("/search", h.searchForms)
	infl.GET("/:word", h.lookup)

	authed := infl.Group("", authMW)
	authed.POST("/rebuild-summaries", h.rebuildSummaries)
}

func (h *Handler) lookup(c *gin.Context) {
	result, err := h.svc.LookupInflections(c.Request.Context(), c.Param("word"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *Handler) listLemmas(c *gin.Context) {
	var filter ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	// legacy query param name used by the web client
	if filter.Search == "" {
		filter.Search = c.Query("q")
	}
	if pos := c.Query("pos"); pos != "" && filter.PartOfSpeech == "" {
		filter.PartOfSpeech = models.PartOfSpeech(pos)
	}

	entries, err := h.svc.ListLemmas(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, entries)
}

func (h *Handler) searchForms(c *gin.Context) {
	var criteria SearchCriteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	rows, err := h.svc.SearchForms(c.Request.Context(), criteria)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

func (h *Handler) rebuildSummaries(c *gin.Context) {
	if err := h.svc.RebuildSummaries(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"ok": true})
}
