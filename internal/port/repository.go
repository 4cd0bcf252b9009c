package port

import (
	"context"

	"github.com/google/uuid"

	"gstbill/internal/domain"
)

// CompanyRepository defines the contract for company profile persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
}

// UserRepository defines the contract for user persistence. Emails are
// globally unique; a user belongs to exactly one company.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ClientRepository defines the contract for client persistence.
// All query methods include companyID to enforce company isolation.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, companyID, clientID uuid.UUID) (*domain.Client, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, companyID, clientID uuid.UUID) error
}

// ProductRepository defines the contract for product catalog persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, companyID, productID uuid.UUID) (*domain.Product, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, companyID, productID uuid.UUID) error
}

// BankDetailRepository defines the contract for bank account persistence.
type BankDetailRepository interface {
	Create(ctx context.Context, detail *domain.BankDetail) error
	GetByID(ctx context.Context, companyID, detailID uuid.UUID) (*domain.BankDetail, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.BankDetail, error)
	Update(ctx context.Context, detail *domain.BankDetail) error
	Delete(ctx context.Context, companyID, detailID uuid.UUID) error
}

// InvoiceRepository defines the contract for invoice persistence. Create and
// Update write the invoice and its line items atomically. ListNumbers feeds
// the invoice number allocator and may fail independently of the rest of the
// create flow; callers degrade to locally known numbers when it does.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
	GetByID(ctx context.Context, companyID, invoiceID uuid.UUID) (*domain.Invoice, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error)
	ListItems(ctx context.Context, invoiceID uuid.UUID) ([]domain.InvoiceItem, error)
	ListNumbers(ctx context.Context, companyID uuid.UUID) ([]string, error)
	Update(ctx context.Context, invoice *domain.Invoice, items []domain.InvoiceItem) error
}
