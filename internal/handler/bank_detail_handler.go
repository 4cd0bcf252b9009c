package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/middleware"
	"gstbill/internal/service"
)

// BankDetailHandler serves payee bank accounts.
type BankDetailHandler struct {
	details service.BankDetailService
}

// NewBankDetailHandler creates a new BankDetailHandler.
func NewBankDetailHandler(details service.BankDetailService) *BankDetailHandler {
	return &BankDetailHandler{details: details}
}

// Create saves a new bank account.
func (h *BankDetailHandler) Create(c *gin.Context) {
	var input service.BankDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	detail, err := h.details.Create(c.Request.Context(), middleware.CompanyID(c), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, detail)
}

// Get returns one bank account.
func (h *BankDetailHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid bank detail id")
		return
	}

	detail, err := h.details.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, detail)
}

// List returns all of the company's bank accounts.
func (h *BankDetailHandler) List(c *gin.Context) {
	details, err := h.details.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, details)
}

// Update saves changes to a bank account.
func (h *BankDetailHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid bank detail id")
		return
	}

	var input service.BankDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	detail, err := h.details.Update(c.Request.Context(), middleware.CompanyID(c), id, input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, detail)
}

// Delete removes a bank account. Issued invoices keep their bank snapshot.
func (h *BankDetailHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid bank detail id")
		return
	}

	if err := h.details.Delete(c.Request.Context(), middleware.CompanyID(c), id); err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"deleted": true})
}
