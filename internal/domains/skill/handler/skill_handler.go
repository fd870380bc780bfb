package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/skill"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type SkillHandler struct {
	service skill.Service
}

func NewSkillHandler(service skill.Service) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	skills, err := h.service.ListSkills(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skills retrieved successfully", skills)
}

func (h *SkillHandler) GetSkillByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	s, err := h.service.GetSkillByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill retrieved successfully", s)
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req skill.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	s, err := h.service.CreateSkill(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill created successfully", s)
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	var req skill.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	s, err := h.service.UpdateSkill(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated successfully", s)
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill ID")
		return
	}

	if err := h.service.DeleteSkill(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted successfully", nil)
}

func (h *SkillHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill categories retrieved successfully", categories)
}

func (h *SkillHandler) GetCategoryByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill category ID")
		return
	}

	cat, err := h.service.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill category retrieved successfully", cat)
}

func (h *SkillHandler) CreateCategory(c *gin.Context) {
	var req skill.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill category created successfully", cat)
}

func (h *SkillHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill category ID")
		return
	}

	var req skill.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill category updated successfully", cat)
}

func (h *SkillHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid skill category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Skill category deleted successfully", nil)
}

func (h *SkillHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	switch {
	case errors.Is(err, skill.ErrSkillNotFound):
		response.NotFound(c, "Skill not found")
	case errors.Is(err, skill.ErrCategoryNotFound):
		response.NotFound(c, "Skill category not found")
	case errors.Is(err, skill.ErrCategoryAlreadyExists):
		response.Conflict(c, "Skill category already exists")
	case errors.Is(err, skill.ErrCategoryNotEmpty):
		response.Conflict(c, "Skill category still has skills attached")
	default:
		logger.Error("skill handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
