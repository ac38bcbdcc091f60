package approval

import (
	"time"

	"github.com/google/uuid"
)

const (
	QueueHRManager = "HR_MANAGER_QUEUE"

	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityNormal = "NORMAL"

	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
)

type Task struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_approval_tasks_queue"`
	LeaveRequestID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_approval_task_open,where:status <> 'COMPLETED'"`
	Queue          string     `gorm:"type:varchar(50);not null;index:idx_approval_tasks_queue"`
	Priority       string     `gorm:"type:varchar(10);not null;default:'NORMAL'"`
	Notes          string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:'OPEN';index:idx_approval_tasks_queue"`
	AssignedTo     *uuid.UUID `gorm:"type:uuid"`
	CompletedBy    *uuid.UUID `gorm:"type:uuid"`
	CompletedAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Task) TableName() string {
	return "approval_tasks"
}
