package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// BankDetailInput carries the editable fields of a payee bank account.
type BankDetailInput struct {
	BankName      string `json:"bankName" binding:"required"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber" binding:"required"`
	Branch        string `json:"bankBranch"`
	IFSCCode      string `json:"ifscCode"`
	IsActive      bool   `json:"active"`
}

// BankDetailService manages payee bank accounts printed on invoices.
type BankDetailService interface {
	Create(ctx context.Context, companyID uuid.UUID, input BankDetailInput) (*domain.BankDetail, error)
	Get(ctx context.Context, companyID, detailID uuid.UUID) (*domain.BankDetail, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.BankDetail, error)
	Update(ctx context.Context, companyID, detailID uuid.UUID, input BankDetailInput) (*domain.BankDetail, error)
	Delete(ctx context.Context, companyID, detailID uuid.UUID) error
}

type bankDetailService struct {
	details port.BankDetailRepository
}

// NewBankDetailService creates a new BankDetailService.
func NewBankDetailService(details port.BankDetailRepository) BankDetailService {
	return &bankDetailService{details: details}
}

func (s *bankDetailService) Create(ctx context.Context, companyID uuid.UUID, input BankDetailInput) (*domain.BankDetail, error) {
	detail := &domain.BankDetail{
		CompanyID:     companyID,
		BankName:      strings.TrimSpace(input.BankName),
		AccountName:   strings.TrimSpace(input.AccountName),
		AccountNumber: strings.TrimSpace(input.AccountNumber),
		Branch:        strings.TrimSpace(input.Branch),
		IFSCCode:      strings.ToUpper(strings.TrimSpace(input.IFSCCode)),
		IsActive:      input.IsActive,
	}
	if err := s.details.Create(ctx, detail); err != nil {
		return nil, fmt.Errorf("bankDetailService.Create: %w", err)
	}
	return detail, nil
}

func (s *bankDetailService) Get(ctx context.Context, companyID, detailID uuid.UUID) (*domain.BankDetail, error) {
	detail, err := s.details.GetByID(ctx, companyID, detailID)
	if err != nil {
		return nil, fmt.Errorf("bankDetailService.Get: %w", err)
	}
	return detail, nil
}

func (s *bankDetailService) List(ctx context.Context, companyID uuid.UUID) ([]domain.BankDetail, error) {
	details, err := s.details.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("bankDetailService.List: %w", err)
	}
	return details, nil
}

func (s *bankDetailService) Update(ctx context.Context, companyID, detailID uuid.UUID, input BankDetailInput) (*domain.BankDetail, error) {
	detail, err := s.details.GetByID(ctx, companyID, detailID)
	if err != nil {
		return nil, fmt.Errorf("bankDetailService.Update: %w", err)
	}

	detail.BankName = strings.TrimSpace(input.BankName)
	detail.AccountName = strings.TrimSpace(input.AccountName)
	detail.AccountNumber = strings.TrimSpace(input.AccountNumber)
	detail.Branch = strings.TrimSpace(input.Branch)
	detail.IFSCCode = strings.ToUpper(strings.TrimSpace(input.IFSCCode))
	detail.IsActive = input.IsActive

	if err := s.details.Update(ctx, detail); err != nil {
		return nil, fmt.Errorf("bankDetailService.Update: %w", err)
	}
	return detail, nil
}

func (s *bankDetailService) Delete(ctx context.Context, companyID, detailID uuid.UUID) error {
	if err := s.details.Delete(ctx, companyID, detailID); err != nil {
		return fmt.Errorf("bankDetailService.Delete: %w", err)
	}
	return nil
}
