package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salesops/internal/domain"
)

const isoDate = "2006-01-02"

// AdSpendRepositoryPG implements AdSpendRepository using PostgreSQL.
type AdSpendRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewAdSpendRepository constructs the repository.
func NewAdSpendRepository(pool *pgxpool.Pool) *AdSpendRepositoryPG {
	return &AdSpendRepositoryPG{pool: pool}
}

// ListOverlapping returns campaign entries whose window overlaps
// [start, end], newest first.
func (r *AdSpendRepositoryPG) ListOverlapping(ctx context.Context, profile domain.Profile, start, end string) ([]domain.AdSpendEntry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, profile, start_date, end_date, impressions, clicks, followers, spend, created_at
FROM ad_spend_entries
WHERE profile = $1 AND start_date <= $3::date AND end_date >= $2::date
ORDER BY start_date DESC;
`, profile, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.AdSpendEntry
	for rows.Next() {
		var e domain.AdSpendEntry
		var startDate, endDate time.Time
		if err := rows.Scan(&e.ID, &e.Profile, &startDate, &endDate, &e.Impressions, &e.Clicks, &e.Followers, &e.Spend, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.StartDate = startDate.Format(isoDate)
		e.EndDate = endDate.Format(isoDate)
		items = append(items, e)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces an entry by id.
func (r *AdSpendRepositoryPG) Upsert(ctx context.Context, entry *domain.AdSpendEntry) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO ad_spend_entries (id, profile, start_date, end_date, impressions, clicks, followers, spend)
VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    profile = EXCLUDED.profile,
    start_date = EXCLUDED.start_date,
    end_date = EXCLUDED.end_date,
    impressions = EXCLUDED.impressions,
    clicks = EXCLUDED.clicks,
    followers = EXCLUDED.followers,
    spend = EXCLUDED.spend;
`, entry.ID, entry.Profile, entry.StartDate, entry.EndDate, entry.Impressions, entry.Clicks, entry.Followers, entry.Spend)
	return err
}

// Delete removes an entry by id, reporting domain.ErrNotFound when no row
// matched.
func (r *AdSpendRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ad_spend_entries WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
