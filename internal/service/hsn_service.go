package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"pharmadist/internal/domain"
	"pharmadist/internal/gst"
	"pharmadist/internal/port"
)

// HSNService manages the HSN master reference data.
type HSNService interface {
	List(ctx context.Context) ([]domain.HSNMaster, error)
	Lookup(ctx context.Context, code string) (*domain.HSNMaster, error)
	SeedPharmaceutical(ctx context.Context) (int, error)
	Import(ctx context.Context, entries []domain.HSNMaster) (int, error)
}

type hsnService struct {
	repo port.HSNRepository
}

// NewHSNService creates a new HSNService.
func NewHSNService(repo port.HSNRepository) HSNService {
	return &hsnService{repo: repo}
}

func hsnEntry(code, desc, rate string, category domain.HSNCategory) domain.HSNMaster {
	return domain.HSNMaster{
		HSNCode:     code,
		Description: desc,
		GSTRate:     decimal.RequireFromString(rate),
		Category:    category,
	}
}

// PharmaceuticalHSNCodes is the fixed set of chapter 30 and 90 codes a distributor trades in.
func PharmaceuticalHSNCodes() []domain.HSNMaster {
	pharma, device := domain.HSNCategoryPharma, domain.HSNCategoryMedicalDevice
	return []domain.HSNMaster{
		hsnEntry("30041000", "Medicaments containing penicillins or derivatives thereof", "12", pharma),
		hsnEntry("30042000", "Medicaments containing antibiotics (other than penicillins)", "12", pharma),
		hsnEntry("30043100", "Medicaments containing insulin", "12", pharma),
		hsnEntry("30043200", "Medicaments containing corticosteroid hormones", "12", pharma),
		hsnEntry("30043900", "Other medicaments containing hormones", "12", pharma),
		hsnEntry("30044000", "Medicaments containing alkaloids", "12", pharma),
		hsnEntry("30045000", "Other medicaments containing vitamins", "12", pharma),
		hsnEntry("30049000", "Other medicaments", "12", pharma),
		hsnEntry("30051000", "Adhesive dressings and other articles having an adhesive layer", "12", device),
		hsnEntry("30059090", "Other pharmaceutical goods", "12", pharma),
		hsnEntry("90211000", "Orthopaedic appliances", "5", device),
		hsnEntry("90212100", "Artificial teeth and dental fittings", "12", device),
		hsnEntry("90189099", "Other medical instruments and appliances", "12", device),
	}
}

func (s *hsnService) List(ctx context.Context) ([]domain.HSNMaster, error) {
	return s.repo.List(ctx)
}

// Lookup returns the exact entry for code, falling back to the longest known prefix.
func (s *hsnService) Lookup(ctx context.Context, code string) (*domain.HSNMaster, error) {
	code = strings.TrimSpace(code)
	entry, err := s.repo.GetByCode(ctx, code)
	if err == nil {
		return entry, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	found, ok := gst.NewHSNLookup(entries).Find(code)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &found, nil
}

// SeedPharmaceutical inserts the pharmaceutical code list, skipping codes already present.
func (s *hsnService) SeedPharmaceutical(ctx context.Context) (int, error) {
	return s.repo.InsertMissing(ctx, PharmaceuticalHSNCodes())
}

// Import inserts externally sourced entries with the same skip-existing semantics.
func (s *hsnService) Import(ctx context.Context, entries []domain.HSNMaster) (int, error) {
	valid := make([]domain.HSNMaster, 0, len(entries))
	for i := range entries {
		e := entries[i]
		e.HSNCode = strings.TrimSpace(e.HSNCode)
		if e.HSNCode == "" {
			continue
		}
		if e.Category == "" {
			e.Category = domain.HSNCategoryPharma
		}
		valid = append(valid, e)
	}
	return s.repo.InsertMissing(ctx, valid)
}
