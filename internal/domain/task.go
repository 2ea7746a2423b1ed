package domain

import "time"

// TaskStatus is the kanban column of an operations task.
type TaskStatus string

const (
	TaskPausado     TaskStatus = "pausado"
	TaskEmAndamento TaskStatus = "em_andamento"
	TaskFeito       TaskStatus = "feito"
	TaskArquivado   TaskStatus = "arquivado"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPausado, TaskEmAndamento, TaskFeito, TaskArquivado:
		return true
	}
	return false
}

// OpsTask is an organization-wide kanban card. Not part of the metrics core.
type OpsTask struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Owner     string     `json:"owner,omitempty"`
	DueDate   *string    `json:"due_date,omitempty"`
	Status    TaskStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}
