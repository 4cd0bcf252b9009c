package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// CompanyHandler serves the company profile.
type CompanyHandler struct {
	companies service.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companies service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Get returns the caller's company profile.
func (h *CompanyHandler) Get(c *gin.Context) {
	company, err := h.companies.Get(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, company)
}

// Update saves the company profile.
func (h *CompanyHandler) Update(c *gin.Context) {
	var input service.UpdateCompanyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	company, err := h.companies.Update(c.Request.Context(), middleware.CompanyID(c), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, company)
}
