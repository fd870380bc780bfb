package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"portfolio-backend/internal/domains/certification"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type CertificationHandler struct {
	service certification.Service
}

func NewCertificationHandler(service certification.Service) *CertificationHandler {
	return &CertificationHandler{service: service}
}

func (h *CertificationHandler) List(c *gin.Context) {
	certs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Certifications retrieved successfully", certs)
}

func (h *CertificationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid certification ID")
		return
	}

	cert, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Certification retrieved successfully", cert)
}

func (h *CertificationHandler) Create(c *gin.Context) {
	var req certification.CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cert, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Certification created successfully", cert)
}

func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid certification ID")
		return
	}

	var req certification.UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cert, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Certification updated successfully", cert)
}

func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid certification ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Certification deleted successfully", nil)
}

func (h *CertificationHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.ValidationFailed(c, validationErrs)
		return
	}

	switch {
	case errors.Is(err, certification.ErrCertificationNotFound):
		response.NotFound(c, "Certification not found")
	default:
		logger.Error("certification handler error", err)
		response.InternalServerError(c, "Something went wrong")
	}
}
