package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salesops/internal/domain"
)

// LeadRepositoryPG implements LeadRepository using PostgreSQL.
type LeadRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewLeadRepository constructs the repository.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepositoryPG {
	return &LeadRepositoryPG{pool: pool}
}

// ListInWindow returns leads whose funnel attribution date (lead date, else
// creation date) or deal date falls inside [start, end], ordered by funnel
// attribution date descending. The kpi package decides precise per-view
// membership; this query only has to not miss candidates, which is why a
// deal date alone is enough to fetch a row whose lead date sits outside the
// window.
func (r *LeadRepositoryPG) ListInWindow(ctx context.Context, profile domain.Profile, start, end string) ([]domain.MeetingLead, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, profile, lead_date, name, contact, handle, avg_revenue, status, notes, deal_value, deal_date, created_at
FROM meeting_leads
WHERE profile = $1
  AND (COALESCE(lead_date, created_at::date) BETWEEN $2::date AND $3::date
       OR deal_date BETWEEN $2::date AND $3::date)
ORDER BY COALESCE(lead_date, created_at::date) DESC;
`, profile, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MeetingLead
	for rows.Next() {
		var lead domain.MeetingLead
		var leadDate, dealDate *time.Time
		if err := rows.Scan(&lead.ID, &lead.Profile, &leadDate, &lead.Name, &lead.Contact, &lead.Handle, &lead.AvgRevenue, &lead.Status, &lead.Notes, &lead.DealValue, &dealDate, &lead.CreatedAt); err != nil {
			return nil, err
		}
		if leadDate != nil {
			lead.LeadDate = leadDate.Format(isoDate)
		}
		if dealDate != nil {
			d := dealDate.Format(isoDate)
			lead.DealDate = &d
		}
		items = append(items, lead)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces a lead by id. The deal-field invariant (non-nil
// only for venda) is enforced by the handler before this is called.
func (r *LeadRepositoryPG) Upsert(ctx context.Context, lead *domain.MeetingLead) error {
	var leadDate any
	if lead.LeadDate != "" {
		leadDate = lead.LeadDate
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO meeting_leads (id, profile, lead_date, name, contact, handle, avg_revenue, status, notes, deal_value, deal_date)
VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11::date)
ON CONFLICT (id) DO UPDATE SET
    profile = EXCLUDED.profile,
    lead_date = EXCLUDED.lead_date,
    name = EXCLUDED.name,
    contact = EXCLUDED.contact,
    handle = EXCLUDED.handle,
    avg_revenue = EXCLUDED.avg_revenue,
    status = EXCLUDED.status,
    notes = EXCLUDED.notes,
    deal_value = EXCLUDED.deal_value,
    deal_date = EXCLUDED.deal_date;
`, lead.ID, lead.Profile, leadDate, lead.Name, lead.Contact, lead.Handle, lead.AvgRevenue, lead.Status, lead.Notes, lead.DealValue, lead.DealDate)
	return err
}

// Delete removes a lead by id, reporting domain.ErrNotFound when no row
// matched.
func (r *LeadRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM meeting_leads WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
