package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gstbill/internal/domain"
	"gstbill/internal/handler"
	"gstbill/internal/middleware"
	"gstbill/internal/numbering"
	"gstbill/internal/service"
)

type mockInvoiceService struct {
	mock.Mock
}

func (m *mockInvoiceService) Create(ctx context.Context, companyID uuid.UUID, input service.InvoiceInput) (*service.InvoiceDetails, error) {
	args := m.Called(ctx, companyID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceDetails), args.Error(1)
}

func (m *mockInvoiceService) Get(ctx context.Context, companyID, invoiceID uuid.UUID) (*service.InvoiceDetails, error) {
	args := m.Called(ctx, companyID, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceDetails), args.Error(1)
}

func (m *mockInvoiceService) List(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) ListDetails(ctx context.Context, companyID uuid.UUID) ([]service.InvoiceDetails, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.InvoiceDetails), args.Error(1)
}

func (m *mockInvoiceService) Update(ctx context.Context, companyID, invoiceID uuid.UUID, input service.InvoiceInput) (*service.InvoiceDetails, error) {
	args := m.Called(ctx, companyID, invoiceID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceDetails), args.Error(1)
}

func (m *mockInvoiceService) NextNumber(ctx context.Context, companyID uuid.UUID, onDate string) (*service.NumberProposal, error) {
	args := m.Called(ctx, companyID, onDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.NumberProposal), args.Error(1)
}

func (m *mockInvoiceService) ValidateNumber(ctx context.Context, companyID uuid.UUID, entered, onDate string) (numbering.Result, error) {
	args := m.Called(ctx, companyID, entered, onDate)
	return args.Get(0).(numbering.Result), args.Error(1)
}

func (m *mockInvoiceService) SetStatus(ctx context.Context, companyID, invoiceID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	args := m.Called(ctx, companyID, invoiceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *mockInvoiceService) SendEmail(ctx context.Context, companyID, invoiceID uuid.UUID, toEmail string) error {
	args := m.Called(ctx, companyID, invoiceID, toEmail)
	return args.Error(0)
}

func testContext(w *httptest.ResponseRecorder, companyID uuid.UUID) (*gin.Context, *gin.Engine) {
	c, r := gin.CreateTestContext(w)
	c.Set(middleware.ContextCompanyID, companyID)
	return c, r
}

func TestInvoiceHandler_Create_DuplicateNumber(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	companyID := uuid.New()

	mockSvc.On("Create", mock.Anything, companyID, mock.AnythingOfType("service.InvoiceInput")).
		Return(nil, domain.ErrDuplicateInvoiceNumber)

	body, _ := json.Marshal(map[string]interface{}{
		"invoiceNo":   "007",
		"invoiceDate": "2025-02-14",
	})

	w := httptest.NewRecorder()
	c, _ := testContext(w, companyID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Invoice number already exists.")
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	companyID := uuid.New()

	result := &service.InvoiceDetails{
		Invoice: &domain.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "AGT/24-25/001",
			Status:        domain.InvoiceStatusIssued,
		},
		AmountInWords: "ZERO RUPEES ONLY.",
	}
	mockSvc.On("Create", mock.Anything, companyID, mock.AnythingOfType("service.InvoiceInput")).
		Return(result, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"invoiceDate": "2025-02-14",
	})

	w := httptest.NewRecorder()
	c, _ := testContext(w, companyID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/invoices", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "AGT/24-25/001")
	mockSvc.AssertExpectations(t)
}

func TestInvoiceHandler_NextNumber(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	companyID := uuid.New()

	mockSvc.On("NextNumber", mock.Anything, companyID, "2025-02-14").
		Return(&service.NumberProposal{
			Prefix:        "AGT/24-25/",
			Sequence:      "042",
			InvoiceNumber: "AGT/24-25/042",
		}, nil)

	w := httptest.NewRecorder()
	c, _ := testContext(w, companyID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/next-number?date=2025-02-14", nil)

	h.NextNumber(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "AGT/24-25/042")
}

func TestInvoiceHandler_ValidateNumber(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)
	companyID := uuid.New()

	mockSvc.On("ValidateNumber", mock.Anything, companyID, "40", "2025-02-14").
		Return(numbering.Result{Message: "Invoice no. must be > 041."}, nil)

	w := httptest.NewRecorder()
	c, _ := testContext(w, companyID)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/validate-number?sequence=40&date=2025-02-14", nil)

	h.ValidateNumber(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    numbering.Result `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.Valid)
	assert.Equal(t, "Invoice no. must be > 041.", resp.Data.Message)
}

func TestInvoiceHandler_Get_InvalidID(t *testing.T) {
	mockSvc := new(mockInvoiceService)
	h := handler.NewInvoiceHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := testContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/invoices/not-a-uuid", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
