package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"gstbill/internal/billing"
	"gstbill/internal/domain"
	"gstbill/internal/numbering"
	"gstbill/internal/port"
)

// InvoiceItemInput is one submitted line item. Quantity and rate arrive as
// strings because the web form sends raw input; malformed values parse to zero
// rather than rejecting the invoice.
type InvoiceItemInput struct {
	Description string `json:"description"`
	HSNCode     string `json:"hsnCode"`
	UOM         string `json:"uom"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
}

// InvoiceInput carries a submitted invoice. InvoiceNo is the operator-entered
// sequence digits; blank means "allocate the next free number". KnownNumbers
// is the client's view of existing numbers, used as a fallback namespace when
// the authoritative list cannot be loaded at create time.
type InvoiceInput struct {
	InvoiceNo          string             `json:"invoiceNo"`
	InvoiceDate        string             `json:"invoiceDate"`
	TransportMode      string             `json:"transportMode"`
	VehicleNo          string             `json:"vehicleNo"`
	DateOfSupply       string             `json:"dateOfSupply"`
	PlaceOfSupply      string             `json:"placeOfSupply"`
	OrderNumber        string             `json:"orderNumber"`
	TaxOnReverseCharge bool               `json:"taxOnReverseCharge"`
	GRLRNo             string             `json:"grLrNo"`
	EWayBillNo         string             `json:"ewayBillNo"`
	BilledToName       string             `json:"billedToName"`
	BilledToAddress    string             `json:"billedToAddress"`
	BilledToGSTIN      string             `json:"billedToGstin"`
	BilledToState      string             `json:"billedToState"`
	BilledToCode       string             `json:"billedToCode"`
	ShippedToName      string             `json:"shippedToName"`
	ShippedToAddress   string             `json:"shippedToAddress"`
	ShippedToGSTIN     string             `json:"shippedToGstin"`
	ShippedToState     string             `json:"shippedToState"`
	ShippedToCode      string             `json:"shippedToCode"`
	CGSTRate           string             `json:"cgstRate"`
	SGSTRate           string             `json:"sgstRate"`
	IGSTRate           string             `json:"igstRate"`
	BankName           string             `json:"selectedBankName"`
	BankAccountName    string             `json:"selectedAccountName"`
	BankAccountNumber  string             `json:"selectedAccountNumber"`
	BankIFSCCode       string             `json:"selectedIfscCode"`
	TermsAndConditions string             `json:"termsAndConditions"`
	Items              []InvoiceItemInput `json:"items"`
	KnownNumbers       []string           `json:"knownInvoiceNumbers"`
}

// InvoiceDetails is an invoice joined with its line items and derived amounts.
type InvoiceDetails struct {
	Invoice       *domain.Invoice      `json:"invoice"`
	Items         []domain.InvoiceItem `json:"items"`
	Totals        billing.Totals       `json:"totals"`
	AmountInWords string               `json:"amountInWords"`
}

// NumberProposal is the allocator's suggestion for the next invoice number.
// Highest is the largest existing sequence in the namespace, 0 when empty.
type NumberProposal struct {
	Prefix        string `json:"prefix"`
	Sequence      string `json:"sequence"`
	InvoiceNumber string `json:"invoiceNumber"`
	Highest       int    `json:"highest"`
}

// InvoiceService manages the invoice lifecycle: number allocation, committed
// writes, derived amount reads, exports, and notifications.
type InvoiceService interface {
	Create(ctx context.Context, companyID uuid.UUID, input InvoiceInput) (*InvoiceDetails, error)
	Get(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceDetails, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error)
	ListDetails(ctx context.Context, companyID uuid.UUID) ([]InvoiceDetails, error)
	Update(ctx context.Context, companyID, invoiceID uuid.UUID, input InvoiceInput) (*InvoiceDetails, error)
	NextNumber(ctx context.Context, companyID uuid.UUID, onDate string) (*NumberProposal, error)
	ValidateNumber(ctx context.Context, companyID uuid.UUID, entered, onDate string) (numbering.Result, error)
	SetStatus(ctx context.Context, companyID, invoiceID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error)
	SendEmail(ctx context.Context, companyID, invoiceID uuid.UUID, toEmail string) error
}

type invoiceService struct {
	invoices  port.InvoiceRepository
	companies port.CompanyRepository
	email     port.EmailSender
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoices port.InvoiceRepository, companies port.CompanyRepository, email port.EmailSender) InvoiceService {
	return &invoiceService{invoices: invoices, companies: companies, email: email}
}

func (s *invoiceService) Create(ctx context.Context, companyID uuid.UUID, input InvoiceInput) (*InvoiceDetails, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Create: load company: %w", err)
	}

	prefix := numbering.Prefix(companyPrefix(company), invoiceDate(input.InvoiceDate))

	// The authoritative namespace is the stored number list. If that read
	// fails the create still proceeds against the client-known numbers; the
	// unique index on (company_id, lower(invoice_number)) backstops races.
	existing, err := s.invoices.ListNumbers(ctx, companyID)
	if err != nil {
		log.Printf("WARN invoice create: list numbers failed, using client-known set: %v", err)
		existing = input.KnownNumbers
	}

	entered := strings.TrimSpace(input.InvoiceNo)
	var number string
	if entered == "" {
		number = numbering.Next(existing, prefix)
	} else {
		result := numbering.Validate(existing, prefix, entered)
		if !result.Valid {
			if strings.Contains(result.Message, "already exists") {
				return nil, domain.ErrDuplicateInvoiceNumber
			}
			return nil, domain.ErrSequenceNotGreater
		}
		number = prefix + numbering.PadSequence(entered)
	}

	invoice := buildInvoice(companyID, number, input)
	invoice.Status = domain.InvoiceStatusIssued
	items := buildItems(input.Items)

	if err := s.invoices.Create(ctx, invoice, items); err != nil {
		return nil, fmt.Errorf("invoiceService.Create: %w", err)
	}

	stored, err := s.invoices.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Create: reload items: %w", err)
	}
	return details(invoice, stored), nil
}

func (s *invoiceService) Get(ctx context.Context, companyID, invoiceID uuid.UUID) (*InvoiceDetails, error) {
	invoice, err := s.invoices.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Get: %w", err)
	}
	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Get: %w", err)
	}
	return details(invoice, items), nil
}

func (s *invoiceService) List(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	invoices, err := s.invoices.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.List: %w", err)
	}
	return invoices, nil
}

// ListDetails joins every invoice with its items and derived amounts. Used by
// the register export, which needs computed totals for all invoices at once.
func (s *invoiceService) ListDetails(ctx context.Context, companyID uuid.UUID) ([]InvoiceDetails, error) {
	invoices, err := s.invoices.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.ListDetails: %w", err)
	}

	out := make([]InvoiceDetails, 0, len(invoices))
	for i := range invoices {
		items, err := s.invoices.ListItems(ctx, invoices[i].ID)
		if err != nil {
			return nil, fmt.Errorf("invoiceService.ListDetails: %w", err)
		}
		out = append(out, *details(&invoices[i], items))
	}
	return out, nil
}

// Update rewrites everything except the invoice number, which is frozen at
// creation. A submitted invoiceNo is ignored, not rejected.
func (s *invoiceService) Update(ctx context.Context, companyID, invoiceID uuid.UUID, input InvoiceInput) (*InvoiceDetails, error) {
	current, err := s.invoices.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Update: %w", err)
	}

	invoice := buildInvoice(companyID, current.InvoiceNumber, input)
	invoice.ID = current.ID
	invoice.Status = current.Status
	invoice.CreatedAt = current.CreatedAt
	items := buildItems(input.Items)

	if err := s.invoices.Update(ctx, invoice, items); err != nil {
		return nil, fmt.Errorf("invoiceService.Update: %w", err)
	}

	stored, err := s.invoices.ListItems(ctx, invoice.ID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.Update: reload items: %w", err)
	}
	return details(invoice, stored), nil
}

func (s *invoiceService) NextNumber(ctx context.Context, companyID uuid.UUID, onDate string) (*NumberProposal, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.NextNumber: load company: %w", err)
	}
	existing, err := s.invoices.ListNumbers(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.NextNumber: %w", err)
	}

	prefix := numbering.Prefix(companyPrefix(company), invoiceDate(onDate))
	highest := numbering.HighestSequence(existing, prefix)
	number := numbering.Format(prefix, highest+1)
	_, seq, _ := numbering.Split(number)
	return &NumberProposal{Prefix: prefix, Sequence: seq, InvoiceNumber: number, Highest: highest}, nil
}

func (s *invoiceService) ValidateNumber(ctx context.Context, companyID uuid.UUID, entered, onDate string) (numbering.Result, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return numbering.Result{}, fmt.Errorf("invoiceService.ValidateNumber: load company: %w", err)
	}
	existing, err := s.invoices.ListNumbers(ctx, companyID)
	if err != nil {
		return numbering.Result{}, fmt.Errorf("invoiceService.ValidateNumber: %w", err)
	}

	prefix := numbering.Prefix(companyPrefix(company), invoiceDate(onDate))
	return numbering.Validate(existing, prefix, strings.TrimSpace(entered)), nil
}

func (s *invoiceService) SetStatus(ctx context.Context, companyID, invoiceID uuid.UUID, status domain.InvoiceStatus) (*domain.Invoice, error) {
	invoice, err := s.invoices.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.SetStatus: %w", err)
	}
	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("invoiceService.SetStatus: %w", err)
	}

	invoice.Status = status
	if err := s.invoices.Update(ctx, invoice, items); err != nil {
		return nil, fmt.Errorf("invoiceService.SetStatus: %w", err)
	}
	return invoice, nil
}

func (s *invoiceService) SendEmail(ctx context.Context, companyID, invoiceID uuid.UUID, toEmail string) error {
	if strings.TrimSpace(toEmail) == "" {
		return domain.ErrClientHasNoEmail
	}

	invoice, err := s.invoices.GetByID(ctx, companyID, invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceService.SendEmail: %w", err)
	}
	items, err := s.invoices.ListItems(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceService.SendEmail: %w", err)
	}
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("invoiceService.SendEmail: load company: %w", err)
	}

	totals := computeTotals(invoice, items)
	msg := port.InvoiceEmail{
		CompanyName:   company.Name,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate,
		GrandTotal:    totals.GrandTotal,
		AmountInWords: billing.AmountInWords(totals.GrandTotal),
	}
	if err := s.email.SendInvoiceIssued(ctx, toEmail, invoice.BilledToName, msg); err != nil {
		return fmt.Errorf("invoiceService.SendEmail: %w", err)
	}
	return nil
}

// companyPrefix returns the company's numbering code, deriving it from the
// name when the profile has no explicit prefix yet.
func companyPrefix(company *domain.Company) string {
	if company.InvoicePrefix != "" {
		return company.InvoicePrefix
	}
	return numbering.Acronym(company.Name)
}

// invoiceDate parses a wire-format date, falling back to now so a missing or
// malformed date still lands in a usable fiscal-year namespace.
func invoiceDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err == nil {
		return t
	}
	return time.Now()
}

// parseAmount converts raw form input to a float, treating anything
// unparseable as zero.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}

func buildInvoice(companyID uuid.UUID, number string, input InvoiceInput) *domain.Invoice {
	return &domain.Invoice{
		CompanyID:          companyID,
		InvoiceNumber:      number,
		InvoiceDate:        strings.TrimSpace(input.InvoiceDate),
		TransportMode:      input.TransportMode,
		VehicleNo:          input.VehicleNo,
		DateOfSupply:       strings.TrimSpace(input.DateOfSupply),
		PlaceOfSupply:      input.PlaceOfSupply,
		OrderNumber:        input.OrderNumber,
		TaxOnReverseCharge: input.TaxOnReverseCharge,
		GRLRNo:             input.GRLRNo,
		EWayBillNo:         input.EWayBillNo,
		BilledToName:       input.BilledToName,
		BilledToAddress:    input.BilledToAddress,
		BilledToGSTIN:      strings.ToUpper(strings.TrimSpace(input.BilledToGSTIN)),
		BilledToState:      input.BilledToState,
		BilledToCode:       input.BilledToCode,
		ShippedToName:      input.ShippedToName,
		ShippedToAddress:   input.ShippedToAddress,
		ShippedToGSTIN:     strings.ToUpper(strings.TrimSpace(input.ShippedToGSTIN)),
		ShippedToState:     input.ShippedToState,
		ShippedToCode:      input.ShippedToCode,
		CGSTRate:           parseAmount(input.CGSTRate),
		SGSTRate:           parseAmount(input.SGSTRate),
		IGSTRate:           parseAmount(input.IGSTRate),
		BankName:           input.BankName,
		BankAccountName:    input.BankAccountName,
		BankAccountNumber:  input.BankAccountNumber,
		BankIFSCCode:       strings.ToUpper(strings.TrimSpace(input.BankIFSCCode)),
		TermsAndConditions: input.TermsAndConditions,
	}
}

func buildItems(inputs []InvoiceItemInput) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, domain.InvoiceItem{
			Description: in.Description,
			HSNCode:     strings.TrimSpace(in.HSNCode),
			UOM:         strings.TrimSpace(in.UOM),
			Quantity:    parseAmount(in.Quantity),
			UnitPrice:   parseAmount(in.Rate),
		})
	}
	return items
}

func computeTotals(invoice *domain.Invoice, items []domain.InvoiceItem) billing.Totals {
	lines := make([]billing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, billing.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return billing.ComputeTotals(lines, billing.TaxRates{
		CGSTRate: invoice.CGSTRate,
		SGSTRate: invoice.SGSTRate,
		IGSTRate: invoice.IGSTRate,
	})
}

func details(invoice *domain.Invoice, items []domain.InvoiceItem) *InvoiceDetails {
	totals := computeTotals(invoice, items)
	return &InvoiceDetails{
		Invoice:       invoice,
		Items:         items,
		Totals:        totals,
		AmountInWords: billing.AmountInWords(totals.GrandTotal),
	}
}
