package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `json:"id" db:"id"`
	CaseID      *int64     `json:"case_id" db:"case_id"`
	ClientID    *int64     `json:"client_id" db:"client_id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Status      TaskStatus `json:"status" db:"status"`
	Priority    string     `json:"priority" db:"priority"`
	DueDate     time.Time  `json:"due_date" db:"due_date"`
	AssignedTo  int64      `json:"assigned_to" db:"assigned_to"`
	CreatedBy   int64      `json:"created_by" db:"created_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
