package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ProductInput carries the editable fields of a catalog product.
type ProductInput struct {
	Name    string `json:"productName" binding:"required"`
	HSNCode string `json:"hsnCode"`
	UOM     string `json:"uom"`
}

// ProductService manages the product catalog.
type ProductService interface {
	Create(ctx context.Context, companyID uuid.UUID, input ProductInput) (*domain.Product, error)
	Get(ctx context.Context, companyID, productID uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.Product, error)
	Update(ctx context.Context, companyID, productID uuid.UUID, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, companyID, productID uuid.UUID) error
}

type productService struct {
	products port.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(products port.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, companyID uuid.UUID, input ProductInput) (*domain.Product, error) {
	product := &domain.Product{
		CompanyID: companyID,
		Name:      strings.TrimSpace(input.Name),
		HSNCode:   strings.TrimSpace(input.HSNCode),
		UOM:       strings.TrimSpace(input.UOM),
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("productService.Create: %w", err)
	}
	return product, nil
}

func (s *productService) Get(ctx context.Context, companyID, productID uuid.UUID) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("productService.Get: %w", err)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, companyID uuid.UUID) ([]domain.Product, error) {
	products, err := s.products.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("productService.List: %w", err)
	}
	return products, nil
}

func (s *productService) Update(ctx context.Context, companyID, productID uuid.UUID, input ProductInput) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, companyID, productID)
	if err != nil {
		return nil, fmt.Errorf("productService.Update: %w", err)
	}

	product.Name = strings.TrimSpace(input.Name)
	product.HSNCode = strings.TrimSpace(input.HSNCode)
	product.UOM = strings.TrimSpace(input.UOM)

	if err := s.products.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("productService.Update: %w", err)
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, companyID, productID uuid.UUID) error {
	if err := s.products.Delete(ctx, companyID, productID); err != nil {
		return fmt.Errorf("productService.Delete: %w", err)
	}
	return nil
}
