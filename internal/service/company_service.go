package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/numbering"
	"gstbill/internal/port"
)

// UpdateCompanyInput carries the editable company profile fields. A blank
// invoice prefix means "derive from the company name".
type UpdateCompanyInput struct {
	Name          string `json:"companyName" binding:"required"`
	Address       string `json:"companyAddress"`
	GSTIN         string `json:"gstinNo"`
	PAN           string `json:"panNumber"`
	State         string `json:"state"`
	StateCode     string `json:"code"`
	InvoicePrefix string `json:"invoicePrefix"`
	LogoKey       string `json:"companyLogoUrl"`
	StampKey      string `json:"companyStampUrl"`
	SignatureKey  string `json:"signatureUrl"`
}

// CompanyService manages the company profile.
type CompanyService interface {
	Get(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*domain.Company, error)
}

type companyService struct {
	companies port.CompanyRepository
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companies port.CompanyRepository) CompanyService {
	return &companyService{companies: companies}
}

func (s *companyService) Get(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("companyService.Get: %w", err)
	}
	return company, nil
}

func (s *companyService) Update(ctx context.Context, companyID uuid.UUID, input UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("companyService.Update: %w", err)
	}

	prefix := strings.ToUpper(strings.TrimSpace(input.InvoicePrefix))
	if prefix == "" {
		prefix = numbering.Acronym(input.Name)
	}

	company.Name = strings.TrimSpace(input.Name)
	company.Address = input.Address
	company.GSTIN = strings.ToUpper(strings.TrimSpace(input.GSTIN))
	company.PAN = strings.ToUpper(strings.TrimSpace(input.PAN))
	company.State = input.State
	company.StateCode = input.StateCode
	company.InvoicePrefix = prefix
	company.LogoKey = input.LogoKey
	company.StampKey = input.StampKey
	company.SignatureKey = input.SignatureKey

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("companyService.Update: %w", err)
	}
	return company, nil
}
