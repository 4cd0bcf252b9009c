package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gstbill/internal/domain"
	"gstbill/internal/port"
)

// ClientInput carries the editable fields of a billed party.
type ClientInput struct {
	Name      string `json:"clientName" binding:"required"`
	Address   string `json:"clientAddress"`
	GSTIN     string `json:"gstinNo"`
	State     string `json:"state"`
	StateCode string `json:"code"`
	Email     string `json:"email"`
}

// ClientService manages the saved client list.
type ClientService interface {
	Create(ctx context.Context, companyID uuid.UUID, input ClientInput) (*domain.Client, error)
	Get(ctx context.Context, companyID, clientID uuid.UUID) (*domain.Client, error)
	List(ctx context.Context, companyID uuid.UUID) ([]domain.Client, error)
	Update(ctx context.Context, companyID, clientID uuid.UUID, input ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, companyID, clientID uuid.UUID) error
}

type clientService struct {
	clients port.ClientRepository
}

// NewClientService creates a new ClientService.
func NewClientService(clients port.ClientRepository) ClientService {
	return &clientService{clients: clients}
}

func (s *clientService) Create(ctx context.Context, companyID uuid.UUID, input ClientInput) (*domain.Client, error) {
	client := &domain.Client{
		CompanyID: companyID,
		Name:      strings.TrimSpace(input.Name),
		Address:   input.Address,
		GSTIN:     strings.ToUpper(strings.TrimSpace(input.GSTIN)),
		State:     input.State,
		StateCode: input.StateCode,
		Email:     strings.TrimSpace(input.Email),
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("clientService.Create: %w", err)
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, companyID, clientID uuid.UUID) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, companyID, clientID)
	if err != nil {
		return nil, fmt.Errorf("clientService.Get: %w", err)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, companyID uuid.UUID) ([]domain.Client, error) {
	clients, err := s.clients.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("clientService.List: %w", err)
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, companyID, clientID uuid.UUID, input ClientInput) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, companyID, clientID)
	if err != nil {
		return nil, fmt.Errorf("clientService.Update: %w", err)
	}

	client.Name = strings.TrimSpace(input.Name)
	client.Address = input.Address
	client.GSTIN = strings.ToUpper(strings.TrimSpace(input.GSTIN))
	client.State = input.State
	client.StateCode = input.StateCode
	client.Email = strings.TrimSpace(input.Email)

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("clientService.Update: %w", err)
	}
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, companyID, clientID uuid.UUID) error {
	if err := s.clients.Delete(ctx, companyID, clientID); err != nil {
		return fmt.Errorf("clientService.Delete: %w", err)
	}
	return nil
}
