package exercise

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lingo-polska/core/internal/models"
	"github.com/lingo-polska/core/internal/pkg/pagination"
	"github.com/lingo-polska/core/internal/pkg/response"
)

type SubmitDTO struct {
	ExerciseID string `json:"exerciseId" binding:"required"`
	Answer     string `json:"answer"     binding:"required"`
}

type ScoreDTO struct {
	Answers []AnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	ex := rg.Group("/exercises")
	ex.GET("/practice", h.practice)
	ex.POST("/submit", h.submit)
	ex.POST("/score", h.score)

	authed := ex.Group("", authMW)
	authed.GET("", h.list)
	authed.GET("/:id", h.get)
	authed.POST("", h.create)
	authed.PUT("/:id", h.update)
	authed.PATCH("/:id", h.update)
	authed.DELETE("/:id", h.delete)
}

func (h *Handler) practice(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	questions, err := h.svc.PracticeSet(listQueryFromContext(c), size)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, questions)
}

func (h *Handler) submit(c *gin.Context) {
	var dto SubmitDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.Submit(dto.ExerciseID, dto.Answer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *Handler) score(c *gin.Context) {
	var dto ScoreDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := h.svc.ScoreSet(dto.Answers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

func (h *Handler) list(c *gin.Context) {
	var rows []models.ExerciseModel
	page, err := pagination.Paginate(h.svc.Query(listQueryFromContext(c)), pagination.FromContext(c), &rows)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Paged(c, rows, page)
}

func (h *Handler) get(c *gin.Context) {
	ex, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if ex == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ex)
}

func (h *Handler) create(c *gin.Context) {
	var dto CreateExerciseDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ex, err := h.svc.Create(&dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, ex)
}

func (h *Handler) update(c *gin.Context) {
	var dto UpdateExerciseDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	ex, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.Error(c, err)
		return
	}
	if ex == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, ex)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func listQueryFromContext(c *gin.Context) ListQuery {
	return ListQuery{
		Type:  c.Query("type"),
		Topic: c.Query("topic"),
		Level: c.Query("level"),
	}
}
