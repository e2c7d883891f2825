package models

import (
	"time"
)

// LedgerEntryType distinguishes expense and income entries
type LedgerEntryType string

const (
	LedgerExpense LedgerEntryType = "EXPENSE"
	LedgerIncome  LedgerEntryType = "INCOME"
)

// ValidLedgerEntryType reports whether the given type is known.
func ValidLedgerEntryType(t LedgerEntryType) bool {
	return t == LedgerExpense || t == LedgerIncome
}

// LedgerEntry defines a bookkeeping entry in the institute ledger
type LedgerEntry struct {
	ID        int64           `json:"id" db:"id"`
	EntryType LedgerEntryType `json:"entryType" db:"entry_type"`
	Category  string          `json:"category" db:"category"`
	Amount    float64         `json:"amount" db:"amount"`
	EntryDate time.Time       `json:"entryDate" db:"entry_date"`
	Note      *string         `json:"note,omitempty" db:"note"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
