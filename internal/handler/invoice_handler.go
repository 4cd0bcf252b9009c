package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/middleware"
	"gstbill/internal/service"
	"gstbill/internal/xlsxexport"
)

// InvoiceHandler serves the invoice lifecycle endpoints.
type InvoiceHandler struct {
	invoices service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoices service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// Create commits a new invoice, allocating or validating its number.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.invoices.Create(c.Request.Context(), middleware.CompanyID(c), input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusCreated, result)
}

// Get returns one invoice with its items and derived amounts.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	result, err := h.invoices.Get(c.Request.Context(), middleware.CompanyID(c), id)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, result)
}

// List returns the company's invoices, newest first.
func (h *InvoiceHandler) List(c *gin.Context) {
	invoices, err := h.invoices.List(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, invoices)
}

// Update rewrites an invoice. The invoice number never changes.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var input service.InvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.invoices.Update(c.Request.Context(), middleware.CompanyID(c), id, input)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, result)
}

// NextNumber proposes the next free invoice number for the given date
// (?date=YYYY-MM-DD, defaulting to today).
func (h *InvoiceHandler) NextNumber(c *gin.Context) {
	proposal, err := h.invoices.NextNumber(c.Request.Context(), middleware.CompanyID(c), c.Query("date"))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, proposal)
}

// ValidateNumber checks an operator-entered sequence without committing
// anything (?sequence=NN&date=YYYY-MM-DD).
func (h *InvoiceHandler) ValidateNumber(c *gin.Context) {
	result, err := h.invoices.ValidateNumber(c.Request.Context(), middleware.CompanyID(c), c.Query("sequence"), c.Query("date"))
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, result)
}

type setStatusInput struct {
	Status domain.InvoiceStatus `json:"status" binding:"required,oneof=draft issued paid"`
}

// SetStatus moves an invoice through its lifecycle.
func (h *InvoiceHandler) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var input setStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	invoice, err := h.invoices.SetStatus(c.Request.Context(), middleware.CompanyID(c), id, input.Status)
	if err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, invoice)
}

type sendEmailInput struct {
	ToEmail string `json:"toEmail" binding:"required,email"`
}

// SendEmail delivers an invoice notification to the billed party.
func (h *InvoiceHandler) SendEmail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid invoice id")
		return
	}

	var input sendEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if err := h.invoices.SendEmail(c.Request.Context(), middleware.CompanyID(c), id, input.ToEmail); err != nil {
		MapDomainError(c, err)
		return
	}
	RespondSuccess(c, http.StatusOK, gin.H{"sent": true})
}

// Export streams the invoice register as an Excel workbook.
func (h *InvoiceHandler) Export(c *gin.Context) {
	all, err := h.invoices.ListDetails(c.Request.Context(), middleware.CompanyID(c))
	if err != nil {
		MapDomainError(c, err)
		return
	}

	rows := make([]xlsxexport.Row, 0, len(all))
	for _, d := range all {
		rows = append(rows, xlsxexport.Row{
			InvoiceNumber: d.Invoice.InvoiceNumber,
			InvoiceDate:   d.Invoice.InvoiceDate,
			BilledToName:  d.Invoice.BilledToName,
			BilledToGSTIN: d.Invoice.BilledToGSTIN,
			PlaceOfSupply: d.Invoice.PlaceOfSupply,
			Subtotal:      d.Totals.Subtotal,
			CGSTAmount:    d.Totals.CGSTAmount,
			SGSTAmount:    d.Totals.SGSTAmount,
			IGSTAmount:    d.Totals.IGSTAmount,
			GrandTotal:    d.Totals.GrandTotal,
			Status:        string(d.Invoice.Status),
		})
	}

	var buf bytes.Buffer
	if err := xlsxexport.WriteRegister(&buf, rows); err != nil {
		MapDomainError(c, err)
		return
	}

	filename := fmt.Sprintf("invoice-register-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
