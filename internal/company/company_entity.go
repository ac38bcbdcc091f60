package company

import (
	"time"

	"github.com/google/uuid"
)

// Policy holds company-wide calendar settings. The latest effective row wins.
type Policy struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_company_policies_company"`
	WeeklyOffType string    `gorm:"type:varchar(30);not null;default:'SAT_SUN'"`
	Description   string    `gorm:"type:text"`
	EffectiveFrom time.Time `gorm:"type:date;not null"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
	UpdatedAt     time.Time `gorm:"not null;default:now()"`
}

func (Policy) TableName() string {
	return "company_policies"
}
