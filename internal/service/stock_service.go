package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pharmadist/internal/domain"
	"pharmadist/internal/port"
)

// StockService manages inventory and derives stock alerts.
type StockService interface {
	Create(ctx context.Context, input *domain.CreateStockItemInput) (*domain.StockItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error)
	List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error)
	Alerts(ctx context.Context) ([]domain.StockAlert, error)
}

type stockService struct {
	repo             port.StockItemRepository
	expiryWindowDays int
	now              func() time.Time
}

// NewStockService creates a new StockService. Items expiring within expiryWindowDays
// raise an expiry alert.
func NewStockService(repo port.StockItemRepository, expiryWindowDays int) StockService {
	if expiryWindowDays <= 0 {
		expiryWindowDays = 30
	}
	return &stockService{repo: repo, expiryWindowDays: expiryWindowDays, now: time.Now}
}

func (s *stockService) Create(ctx context.Context, input *domain.CreateStockItemInput) (*domain.StockItem, error) {
	if input.Quantity < 0 || input.MinStockLevel < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	item := &domain.StockItem{
		ID:            uuid.New(),
		ItemName:      strings.TrimSpace(input.ItemName),
		Manufacturer:  strings.TrimSpace(input.Manufacturer),
		Category:      strings.TrimSpace(input.Category),
		BatchNumber:   strings.TrimSpace(input.BatchNumber),
		ExpiryDate:    input.ExpiryDate.UTC(),
		Quantity:      input.Quantity,
		MRP:           input.MRP,
		PurchaseRate:  input.PurchaseRate,
		GSTRate:       input.GSTRate,
		HSNCode:       strings.TrimSpace(input.HSNCode),
		MinStockLevel: input.MinStockLevel,
		RackLocation:  strings.TrimSpace(input.RackLocation),
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *stockService) GetByID(ctx context.Context, id uuid.UUID) (*domain.StockItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *stockService) List(ctx context.Context, offset, limit int) ([]domain.StockItem, int, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *stockService) Alerts(ctx context.Context) ([]domain.StockAlert, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return DeriveAlerts(items, s.now(), s.expiryWindowDays), nil
}

// LowStockAlert returns the low stock alert for item, if its quantity is at or below
// the minimum level. An empty batch is always high severity.
func LowStockAlert(item *domain.StockItem) (domain.StockAlert, bool) {
	if item.Quantity > item.MinStockLevel {
		return domain.StockAlert{}, false
	}
	severity := domain.SeverityMedium
	if item.Quantity == 0 {
		severity = domain.SeverityHigh
	}
	return domain.StockAlert{
		ID:          "low-" + item.ID.String(),
		Type:        domain.AlertLowStock,
		Severity:    severity,
		StockItemID: item.ID,
		ItemName:    item.ItemName,
		BatchNumber: item.BatchNumber,
		Quantity:    item.Quantity,
		ExpiryDate:  item.ExpiryDate,
		Message:     fmt.Sprintf("%s (batch %s) has %d units left, minimum is %d", item.ItemName, item.BatchNumber, item.Quantity, item.MinStockLevel),
	}, true
}

// DeriveAlerts computes low stock, expired and expiring alerts as of now.
func DeriveAlerts(items []domain.StockItem, now time.Time, expiryWindowDays int) []domain.StockAlert {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, expiryWindowDays)

	alerts := make([]domain.StockAlert, 0)
	for i := range items {
		item := &items[i]
		if a, ok := LowStockAlert(item); ok {
			alerts = append(alerts, a)
		}

		expiry := item.ExpiryDate.UTC()
		switch {
		case expiry.Before(today):
			alerts = append(alerts, expiryAlert(item, "expired-", domain.AlertExpired, domain.SeverityHigh,
				fmt.Sprintf("%s (batch %s) expired on %s", item.ItemName, item.BatchNumber, expiry.Format(domain.DateLayout))))
		case !expiry.After(horizon):
			days := int(expiry.Sub(today).Hours() / 24)
			alerts = append(alerts, expiryAlert(item, "expiry-", domain.AlertExpirySoon, domain.SeverityMedium,
				fmt.Sprintf("%s (batch %s) expires in %d days", item.ItemName, item.BatchNumber, days)))
		}
	}
	return alerts
}

func expiryAlert(item *domain.StockItem, prefix string, t domain.AlertType, sev domain.AlertSeverity, msg string) domain.StockAlert {
	return domain.StockAlert{
		ID:          prefix + item.ID.String(),
		Type:        t,
		Severity:    sev,
		StockItemID: item.ID,
		ItemName:    item.ItemName,
		BatchNumber: item.BatchNumber,
		Quantity:    item.Quantity,
		ExpiryDate:  item.ExpiryDate,
		Message:     msg,
	}
}
