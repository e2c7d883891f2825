package services

import (
	"context"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/app/models/dto"
	"github.com/digiclass/backend/internal/app/repositories"
	"github.com/digiclass/backend/internal/pkg/apperrors"
	"github.com/digiclass/backend/internal/pkg/helpers"
)

// LedgerService handles institute bookkeeping entries
type LedgerService struct {
	ledgerRepo *repositories.LedgerRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(ledgerRepo *repositories.LedgerRepository) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

func ledgerEntryFromRequest(req *dto.CreateLedgerEntryRequest) (*models.LedgerEntry, error) {
	if !models.ValidLedgerEntryType(req.EntryType) {
		return nil, apperrors.NewBadRequestError("entryType must be EXPENSE or INCOME")
	}

	entryDate, err := helpers.ParseDate(req.EntryDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("entryDate must be YYYY-MM-DD")
	}

	return &models.LedgerEntry{
		EntryType: req.EntryType,
		Category:  req.Category,
		Amount:    req.Amount,
		EntryDate: entryDate,
		Note:      req.Note,
	}, nil
}

// Create records a new ledger entry
func (s *LedgerService) Create(ctx context.Context, req *dto.CreateLedgerEntryRequest) (*models.LedgerEntry, error) {
	entry, err := ledgerEntryFromRequest(req)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Get retrieves a ledger entry by ID
func (s *LedgerService) Get(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	return s.ledgerRepo.GetByID(ctx, id)
}

// List retrieves ledger entries matching the filter
func (s *LedgerService) List(ctx context.Context, filter repositories.LedgerFilter) ([]*models.LedgerEntry, error) {
	return s.ledgerRepo.List(ctx, filter)
}

// Summarize aggregates income and expense totals over the filter's window
func (s *LedgerService) Summarize(ctx context.Context, filter repositories.LedgerFilter) (*dto.LedgerSummary, error) {
	income, expense, err := s.ledgerRepo.Summarize(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.LedgerSummary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
	}, nil
}

// Update replaces a ledger entry's fields
func (s *LedgerService) Update(ctx context.Context, id int64, req *dto.UpdateLedgerEntryRequest) (*models.LedgerEntry, error) {
	existing, err := s.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry, err := ledgerEntryFromRequest(req)
	if err != nil {
		return nil, err
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	if err := s.ledgerRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Delete removes a ledger entry
func (s *LedgerService) Delete(ctx context.Context, id int64) error {
	return s.ledgerRepo.Delete(ctx, id)
}
