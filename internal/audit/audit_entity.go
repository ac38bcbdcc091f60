package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActorSystem = "SYSTEM"
	ActorUser   = "USER"
)

// Entry is one immutable row of a leave request's audit trail.
type Entry struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID         `gorm:"type:uuid;not null;index:idx_leave_audit_company"`
	LeaveRequestID uuid.UUID         `gorm:"type:uuid;not null;index:idx_leave_audit_request"`
	Action         string            `gorm:"type:varchar(100);not null"`
	ActorID        *uuid.UUID        `gorm:"type:uuid"`
	ActorType      string            `gorm:"type:varchar(20);not null"`
	PreviousStatus string            `gorm:"type:varchar(30)"`
	NewStatus      string            `gorm:"type:varchar(30)"`
	Details        string            `gorm:"type:text"`
	Metadata       datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt      time.Time         `gorm:"not null"`
}

func (Entry) TableName() string {
	return "leave_audit_logs"
}
