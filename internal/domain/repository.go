package domain

import "context"

// Repositories follow one shape per entity kind: a range-filtered list
// ordered by attribution date descending, an insert-or-replace upsert keyed
// by a client-generated id, and a delete that reports ErrNotFound when the
// id does not exist. Profile-scoped kinds take the profile as an additional
// required filter.

// AdSpendRepository persists campaign spend entries. ListOverlapping returns
// entries whose campaign window overlaps [start, end], both inclusive.
type AdSpendRepository interface {
	ListOverlapping(ctx context.Context, profile Profile, start, end string) ([]AdSpendEntry, error)
	Upsert(ctx context.Context, entry *AdSpendEntry) error
	Delete(ctx context.Context, id string) error
}

// FunnelRepository persists daily funnel counters, attributed by day.
type FunnelRepository interface {
	ListInRange(ctx context.Context, profile Profile, start, end string) ([]DailyFunnelRecord, error)
	Upsert(ctx context.Context, rec *DailyFunnelRecord) error
	Delete(ctx context.Context, id string) error
}

// LeadRepository persists meeting leads. ListInWindow returns leads whose
// funnel attribution date (lead date falling back to creation date) or deal
// date falls inside [start, end]; precise per-view membership is decided by
// the kpi package, so callers pass a widened upper bound for not-yet-settled
// deals.
type LeadRepository interface {
	ListInWindow(ctx context.Context, profile Profile, start, end string) ([]MeetingLead, error)
	Upsert(ctx context.Context, lead *MeetingLead) error
	Delete(ctx context.Context, id string) error
}

// FinanceRepository persists ledger entries, attributed by day.
type FinanceRepository interface {
	ListInRange(ctx context.Context, start, end string) ([]FinanceEntry, error)
	Upsert(ctx context.Context, entry *FinanceEntry) error
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists kanban cards.
type TaskRepository interface {
	List(ctx context.Context) ([]OpsTask, error)
	Upsert(ctx context.Context, task *OpsTask) error
	Delete(ctx context.Context, id string) error
}
