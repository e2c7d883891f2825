package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/app/models"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// LedgerFilter narrows ledger listings
type LedgerFilter struct {
	EntryType models.LedgerEntryType
	Category  string
	From      *time.Time
	To        *time.Time
}

// LedgerRepository handles database operations for income and expense entries
type LedgerRepository struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a ledger entry
func (r *LedgerRepository) Create(ctx context.Context, entry *models.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (entry_type, category, amount, entry_date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.EntryType, entry.Category, entry.Amount, entry.EntryDate, entry.Note,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating ledger entry: %w", err)
	}

	return nil
}

// GetByID retrieves a ledger entry by ID
func (r *LedgerRepository) GetByID(ctx context.Context, id int64) (*models.LedgerEntry, error) {
	query := `
		SELECT id, entry_type, category, amount, entry_date, note, created_at
		FROM ledger_entries
		WHERE id = $1
	`

	var entry models.LedgerEntry
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.EntryType,
		&entry.Category,
		&entry.Amount,
		&entry.EntryDate,
		&entry.Note,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLedgerEntryNotFound
		}
		return nil, fmt.Errorf("error retrieving ledger entry: %w", err)
	}

	return &entry, nil
}

// List retrieves ledger entries matching the filter, most recent first
func (r *LedgerRepository) List(ctx context.Context, filter LedgerFilter) ([]*models.LedgerEntry, error) {
	builder := r.sb.
		Select("id", "entry_type", "category", "amount", "entry_date", "note", "created_at").
		From("ledger_entries").
		OrderBy("entry_date DESC, id DESC")

	if filter.EntryType != "" {
		builder = builder.Where(sq.Eq{"entry_type": filter.EntryType})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"entry_date": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building ledger list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []*models.LedgerEntry
	for rows.Next() {
		var entry models.LedgerEntry
		err := rows.Scan(
			&entry.ID,
			&entry.EntryType,
			&entry.Category,
			&entry.Amount,
			&entry.EntryDate,
			&entry.Note,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Summarize returns income and expense totals over the filter's date range
func (r *LedgerRepository) Summarize(ctx context.Context, filter LedgerFilter) (totalIncome, totalExpense float64, err error) {
	builder := r.sb.
		Select(
			"COALESCE(SUM(amount) FILTER (WHERE entry_type = 'INCOME'), 0)",
			"COALESCE(SUM(amount) FILTER (WHERE entry_type = 'EXPENSE'), 0)",
		).
		From("ledger_entries")

	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"entry_date": *filter.To})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, 0, fmt.Errorf("error building ledger summary query: %w", err)
	}

	if err := r.db.QueryRow(ctx, query, args...).Scan(&totalIncome, &totalExpense); err != nil {
		return 0, 0, fmt.Errorf("error summarizing ledger: %w", err)
	}

	return totalIncome, totalExpense, nil
}

// Update replaces a ledger entry's fields
func (r *LedgerRepository) Update(ctx context.Context, entry *models.LedgerEntry) error {
	query := `
		UPDATE ledger_entries
		SET entry_type = $1, category = $2, amount = $3, entry_date = $4, note = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		entry.EntryType, entry.Category, entry.Amount, entry.EntryDate, entry.Note, entry.ID)
	if err != nil {
		return fmt.Errorf("error updating ledger entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLedgerEntryNotFound
	}

	return nil
}

// Delete removes a ledger entry
func (r *LedgerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ledger_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting ledger entry: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLedgerEntryNotFound
	}

	return nil
}
