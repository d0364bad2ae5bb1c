package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
	"pharmadist/internal/port"
)

// CustomerService manages distributor customers.
type CustomerService interface {
	Create(ctx context.Context, input *domain.CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error)
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

// NewCustomer builds a customer from input, deriving its type from the GSTIN.
// A GSTIN that is present but malformed is rejected.
func NewCustomer(input *domain.CreateCustomerInput) (*domain.Customer, error) {
	gstin := gst.NormalizeGSTIN(input.GSTNumber)
	if gstin != "" && !gst.ValidGSTIN(gstin) {
		return nil, domain.ErrInvalidGSTIN
	}
	return &domain.Customer{
		ID:                uuid.New(),
		CustomerName:      strings.TrimSpace(input.CustomerName),
		Phone:             strings.TrimSpace(input.Phone),
		Email:             strings.TrimSpace(input.Email),
		Address:           strings.TrimSpace(input.Address),
		GSTNumber:         gstin,
		CustomerType:      gst.CustomerTypeFor(gstin),
		CreditLimit:       input.CreditLimit,
		OutstandingAmount: input.OpeningBalance,
	}, nil
}

func (s *customerService) Create(ctx context.Context, input *domain.CreateCustomerInput) (*domain.Customer, error) {
	c, err := NewCustomer(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, offset, limit)
}
