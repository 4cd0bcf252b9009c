package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

type fakeCompanyRepo struct {
	company *domain.Company
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *domain.Company) error {
	c.ID = uuid.New()
	f.company = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	if f.company == nil || f.company.ID != id {
		return nil, domain.ErrNotFound
	}
	return f.company, nil
}

func (f *fakeCompanyRepo) Update(ctx context.Context, c *domain.Company) error {
	f.company = c
	return nil
}

type fakeInvoiceRepo struct {
	invoices       map[uuid.UUID]*domain.Invoice
	items          map[uuid.UUID][]domain.InvoiceItem
	listNumbersErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[uuid.UUID]*domain.Invoice),
		items:    make(map[uuid.UUID][]domain.InvoiceItem),
	}
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	inv.ID = uuid.New()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].InvoiceID = inv.ID
		items[i].Position = i
	}
	f.invoices[inv.ID] = inv
	f.items[inv.ID] = items
	return nil
}

func (f *fakeInvoiceRepo) GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	inv, ok := f.invoices[invoiceID]
	if !ok || inv.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

func (f *fakeInvoiceRepo) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for _, inv := range f.invoices {
		if inv.CompanyID == companyID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error) {
	return f.items[invoiceID], nil
}

func (f *fakeInvoiceRepo) ListNumbers(ctx context.Context, companyID uuid.UUID) ([]string, error) {
	if f.listNumbersErr != nil {
		return nil, f.listNumbersErr
	}
	var numbers []string
	for _, inv := range f.invoices {
		if inv.CompanyID == companyID {
			numbers = append(numbers, inv.InvoiceNumber)
		}
	}
	return numbers, nil
}

func (f *fakeInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error {
	if _, ok := f.invoices[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	f.invoices[inv.ID] = inv
	f.items[inv.ID] = items
	return nil
}

type fakeEmailSender struct {
	sent []port.InvoiceEmail
	to   []string
}

func (f *fakeEmailSender) SendInvoiceIssued(ctx context.Context, toEmail, toName string, email port.InvoiceEmail) error {
	f.sent = append(f.sent, email)
	f.to = append(f.to, toEmail)
	return nil
}

func newTestService() (InvoiceService, *fakeInvoiceRepo, *fakeCompanyRepo, *fakeEmailSender, uuid.UUID) {
	companies := &fakeCompanyRepo{}
	company := &domain.Company{Name: "Acme Global Traders", InvoicePrefix: "AGT"}
	_ = companies.Create(context.Background(), company)
	invoices := newFakeInvoiceRepo()
	email := &fakeEmailSender{}
	return NewInvoiceService(invoices, companies, email), invoices, companies, email, company.ID
}

func TestCreateAllocatesFirstNumber(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	got, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "2", Rate: "100"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "AGT/24-25/001", got.Invoice.InvoiceNumber)
	assert.Equal(t, domain.InvoiceStatusIssued, got.Invoice.Status)
}

func TestCreateAllocatesNextAfterHighest(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	for _, date := range []string{"2025-02-01", "2025-02-02", "2025-02-03"} {
		_, err := svc.Create(context.Background(), companyID, InvoiceInput{
			InvoiceDate: date,
			Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
		})
		require.NoError(t, err)
	}

	got, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-10",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "AGT/24-25/004", got.Invoice.InvoiceNumber)
}

func TestCreateNewFiscalYearRestartsSequence(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	_, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-03-31",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	got, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-04-01",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "AGT/25-26/001", got.Invoice.InvoiceNumber)
}

func TestCreateRejectsDuplicateEnteredNumber(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	_, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "7",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "007",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
}

func TestCreateRejectsNonIncreasingSequence(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	_, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "5",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "3",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	assert.ErrorIs(t, err, domain.ErrSequenceNotGreater)
}

func TestCreateFallsBackToKnownNumbers(t *testing.T) {
	svc, invoices, _, _, companyID := newTestService()
	invoices.listNumbersErr = errors.New("connection reset")

	got, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate:  "2025-02-14",
		Items:        []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
		KnownNumbers: []string{"AGT/24-25/041"},
	})
	require.NoError(t, err)
	assert.Equal(t, "AGT/24-25/042", got.Invoice.InvoiceNumber)
}

func TestUpdateKeepsInvoiceNumber(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	created, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), companyID, created.Invoice.ID, InvoiceInput{
		InvoiceNo:   "999",
		InvoiceDate: "2025-02-20",
		Items:       []InvoiceItemInput{{Description: "Gadget", Quantity: "3", Rate: "50"}},
	})
	require.NoError(t, err)
	assert.Equal(t, created.Invoice.InvoiceNumber, updated.Invoice.InvoiceNumber)
	assert.Equal(t, "2025-02-20", updated.Invoice.InvoiceDate)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "Gadget", updated.Items[0].Description)
}

func TestGetComputesTotalsAndWords(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	created, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		CGSTRate:    "9",
		SGSTRate:    "9",
		Items: []InvoiceItemInput{
			{Description: "Widget", Quantity: "10", Rate: "100"},
			{Description: "   ", Quantity: "5", Rate: "999"},
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), companyID, created.Invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Totals.Subtotal)
	assert.Equal(t, 90.0, got.Totals.CGSTAmount)
	assert.Equal(t, 90.0, got.Totals.SGSTAmount)
	assert.Equal(t, 1180.0, got.Totals.GrandTotal)
	assert.Equal(t, "ONE THOUSAND ONE HUNDRED AND EIGHTY RUPEES ONLY.", got.AmountInWords)
}

func TestNegativeLineItemsStillRender(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	created, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		CGSTRate:    "9",
		SGSTRate:    "9",
		Items:       []InvoiceItemInput{{Description: "Credit adjustment", Quantity: "-1", Rate: "500"}},
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), companyID, created.Invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, -500.0, got.Totals.Subtotal)
	assert.Equal(t, "ZERO RUPEES ONLY.", got.AmountInWords)
}

func TestMalformedQuantityParsesToZero(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	got, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "abc", Rate: "100"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.Totals.Subtotal)
}

func TestNextNumberProposal(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	_, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "41",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	proposal, err := svc.NextNumber(context.Background(), companyID, "2025-02-20")
	require.NoError(t, err)
	assert.Equal(t, "AGT/24-25/", proposal.Prefix)
	assert.Equal(t, "042", proposal.Sequence)
	assert.Equal(t, "AGT/24-25/042", proposal.InvoiceNumber)
}

func TestValidateNumberMessages(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	_, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceNo:   "41",
		InvoiceDate: "2025-02-14",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "1", Rate: "10"}},
	})
	require.NoError(t, err)

	dup, err := svc.ValidateNumber(context.Background(), companyID, "41", "2025-02-20")
	require.NoError(t, err)
	assert.False(t, dup.Valid)
	assert.Equal(t, "Invoice number already exists.", dup.Message)

	low, err := svc.ValidateNumber(context.Background(), companyID, "40", "2025-02-20")
	require.NoError(t, err)
	assert.False(t, low.Valid)
	assert.Equal(t, "Invoice no. must be > 041.", low.Message)

	ok, err := svc.ValidateNumber(context.Background(), companyID, "42", "2025-02-20")
	require.NoError(t, err)
	assert.True(t, ok.Valid)
}

func TestSendEmailRequiresRecipient(t *testing.T) {
	svc, _, _, _, companyID := newTestService()

	err := svc.SendEmail(context.Background(), companyID, uuid.New(), "   ")
	assert.ErrorIs(t, err, domain.ErrClientHasNoEmail)
}

func TestSendEmailRendersInvoiceFields(t *testing.T) {
	svc, _, _, email, companyID := newTestService()

	created, err := svc.Create(context.Background(), companyID, InvoiceInput{
		InvoiceDate: "2025-02-14",
		CGSTRate:    "9",
		SGSTRate:    "9",
		Items:       []InvoiceItemInput{{Description: "Widget", Quantity: "10", Rate: "100"}},
	})
	require.NoError(t, err)

	err = svc.SendEmail(context.Background(), companyID, created.Invoice.ID, "buyer@example.com")
	require.NoError(t, err)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "buyer@example.com", email.to[0])
	assert.Equal(t, created.Invoice.InvoiceNumber, email.sent[0].InvoiceNumber)
	assert.Equal(t, 1180.0, email.sent[0].GrandTotal)
	assert.Equal(t, "ONE THOUSAND ONE HUNDRED AND EIGHTY RUPEES ONLY.", email.sent[0].AmountInWords)
}
