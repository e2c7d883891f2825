package dto

import (
	"github.com/digiclass/backend/internal/app/models"
)

// CreateLedgerEntryRequest records an expense or income entry
type CreateLedgerEntryRequest struct {
	EntryType models.LedgerEntryType `json:"entryType" binding:"required"`
	Category  string                 `json:"category" binding:"required"`
	Amount    float64                `json:"amount" binding:"required,gt=0"`
	EntryDate string                 `json:"entryDate" binding:"required"` // YYYY-MM-DD
	Note      *string                `json:"note,omitempty"`
}

// UpdateLedgerEntryRequest represents a ledger entry update payload
type UpdateLedgerEntryRequest = CreateLedgerEntryRequest

// LedgerSummary aggregates entry totals over a queried window
type LedgerSummary struct {
	TotalExpense float64 `json:"totalExpense"`
	TotalIncome  float64 `json:"totalIncome"`
	Balance      float64 `json:"balance"`
}
