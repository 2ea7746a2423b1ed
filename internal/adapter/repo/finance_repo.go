package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salesops/internal/domain"
)

// FinanceRepositoryPG implements FinanceRepository using PostgreSQL.
type FinanceRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewFinanceRepository constructs the repository.
func NewFinanceRepository(pool *pgxpool.Pool) *FinanceRepositoryPG {
	return &FinanceRepositoryPG{pool: pool}
}

// ListInRange returns ledger entries attributed to [start, end], newest first.
func (r *FinanceRepositoryPG) ListInRange(ctx context.Context, start, end string) ([]domain.FinanceEntry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, day, kind, expense_type, category, description, value, created_at
FROM finance_entries
WHERE day BETWEEN $1::date AND $2::date
ORDER BY day DESC;
`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.FinanceEntry
	for rows.Next() {
		var e domain.FinanceEntry
		var day time.Time
		if err := rows.Scan(&e.ID, &day, &e.Kind, &e.ExpenseType, &e.Category, &e.Description, &e.Value, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Day = day.Format(isoDate)
		items = append(items, e)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces an entry by id.
func (r *FinanceRepositoryPG) Upsert(ctx context.Context, entry *domain.FinanceEntry) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO finance_entries (id, day, kind, expense_type, category, description, value)
VALUES ($1, $2::date, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    day = EXCLUDED.day,
    kind = EXCLUDED.kind,
    expense_type = EXCLUDED.expense_type,
    category = EXCLUDED.category,
    description = EXCLUDED.description,
    value = EXCLUDED.value;
`, entry.ID, entry.Day, entry.Kind, entry.ExpenseType, entry.Category, entry.Description, entry.Value)
	return err
}

// Delete removes an entry by id, reporting domain.ErrNotFound when no row
// matched.
func (r *FinanceRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM finance_entries WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
