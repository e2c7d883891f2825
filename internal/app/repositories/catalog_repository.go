package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/digiclass/backend/internal/db"
	"github.com/digiclass/backend/internal/pkg/apperrors"
)

// Catalog table names. Both tables have the same shape: a unique name column.
const (
	CatalogStandards = "assigned_standards"
	CatalogSubjects  = "assigned_subjects"
)

// CatalogRepository handles database operations for the assigned standards
// and subjects catalogs. The table is chosen per call so both catalogs share
// one implementation.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// GetAll returns every item in the catalog, unordered. Callers sort.
func (r *CatalogRepository) GetAll(ctx context.Context, table string) ([]string, error) {
	rows, err := r.db.Query(ctx, fmt.Sprintf(`SELECT name FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("error listing catalog items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		items = append(items, name)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Merge inserts the given items, skipping any already present. The whole
// merge runs in one transaction so a partial insert never persists.
func (r *CatalogRepository) Merge(ctx context.Context, table string, items []string) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := fmt.Sprintf(`INSERT INTO %s (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, table)
		for _, item := range items {
			if _, err := tx.Exec(ctx, query, item); err != nil {
				return fmt.Errorf("error merging catalog item: %w", err)
			}
		}
		return nil
	})
}

// Remove deletes the given items. If any item is not present the whole
// removal rolls back and the missing items are returned alongside
// apperrors.ErrCatalogItemsNotAssigned.
func (r *CatalogRepository) Remove(ctx context.Context, table string, items []string) ([]string, error) {
	var missing []string

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		query := fmt.Sprintf(`DELETE FROM %s WHERE name = $1`, table)
		for _, item := range items {
			cmdTag, err := tx.Exec(ctx, query, item)
			if err != nil {
				return fmt.Errorf("error removing catalog item: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				missing = append(missing, item)
			}
		}
		if len(missing) > 0 {
			return apperrors.ErrCatalogItemsNotAssigned
		}
		return nil
	})
	if err != nil {
		return missing, err
	}

	return nil, nil
}
