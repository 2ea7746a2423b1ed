package repo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salesops/internal/domain"
)

// TaskRepositoryPG implements TaskRepository using PostgreSQL.
type TaskRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewTaskRepository constructs the repository.
func NewTaskRepository(pool *pgxpool.Pool) *TaskRepositoryPG {
	return &TaskRepositoryPG{pool: pool}
}

// List returns every kanban card, newest first.
func (r *TaskRepositoryPG) List(ctx context.Context) ([]domain.OpsTask, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, owner, due_date, status, created_at
FROM ops_tasks
ORDER BY created_at DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OpsTask
	for rows.Next() {
		var task domain.OpsTask
		var due *time.Time
		if err := rows.Scan(&task.ID, &task.Title, &task.Owner, &due, &task.Status, &task.CreatedAt); err != nil {
			return nil, err
		}
		if due != nil {
			d := due.Format(isoDate)
			task.DueDate = &d
		}
		items = append(items, task)
	}
	return items, rows.Err()
}

// Upsert inserts or replaces a card by id.
func (r *TaskRepositoryPG) Upsert(ctx context.Context, task *domain.OpsTask) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO ops_tasks (id, title, owner, due_date, status)
VALUES ($1, $2, $3, $4::date, $5)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    owner = EXCLUDED.owner,
    due_date = EXCLUDED.due_date,
    status = EXCLUDED.status;
`, task.ID, task.Title, task.Owner, task.DueDate, task.Status)
	return err
}

// Delete removes a card by id, reporting domain.ErrNotFound when no row
// matched.
func (r *TaskRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM ops_tasks WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
