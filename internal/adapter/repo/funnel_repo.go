package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salesops/internal/domain"
)

// FunnelRepositoryPG implements FunnelRepository using PostgreSQL.
type FunnelRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewFunnelRepository constructs the repository.
func NewFunnelRepository(pool *pgxpool.Pool) *FunnelRepositoryPG {
	return &FunnelRepositoryPG{pool: pool}
}

// ListInRange returns daily records attributed to [start, end], newest first.
func (r *FunnelRepositoryPG) ListInRange(ctx context.Context, profile domain.Profile, start, end string) ([]domain.DailyFunnelRecord, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, profile, day, contato, qualificacao, reuniao, proposta, fechado, created_at
FROM daily_funnel_records
WHERE profile = $1 AND day BETWEEN $2::date AND $3::date
ORDER BY day DESC;
`, profile, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.DailyFunnelRecord
	for rows.Next() {
		var rec domain.DailyFunnelRecord
		var day time.Time
		if err := rows.Scan(&rec.ID, &rec.Profile, &day, &rec.Contato, &rec.Qualificacao, &rec.Reuniao, &rec.Proposta, &rec.Fechado, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Day = day.Format(isoDate)
		items = append(items, rec)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces a record by id. The legacy proposta/fechado
// columns are always written as zero.
func (r *FunnelRepositoryPG) Upsert(ctx context.Context, rec *domain.DailyFunnelRecord) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO daily_funnel_records (id, profile, day, contato, qualificacao, reuniao, proposta, fechado)
VALUES ($1, $2, $3::date, $4, $5, $6, 0, 0)
ON CONFLICT (id) DO UPDATE SET
    profile = EXCLUDED.profile,
    day = EXCLUDED.day,
    contato = EXCLUDED.contato,
    qualificacao = EXCLUDED.qualificacao,
    reuniao = EXCLUDED.reuniao,
    proposta = 0,
    fechado = 0;
`, rec.ID, rec.Profile, rec.Day, rec.Contato, rec.Qualificacao, rec.Reuniao)
	return err
}

// Delete removes a record by id, reporting domain.ErrNotFound when no row
// matched.
func (r *FunnelRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM daily_funnel_records WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
