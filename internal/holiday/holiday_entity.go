package holiday

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypePublic   = "PUBLIC"
	TypeOptional = "OPTIONAL"
	TypeCompany  = "COMPANY"
)

type Holiday struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_holidays_company_date"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Date      time.Time `gorm:"type:date;not null;index:idx_holidays_company_date"`
	Type      string    `gorm:"type:varchar(20);not null;default:'PUBLIC'"`
	Location  *string   `gorm:"type:varchar(100)"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Holiday) TableName() string {
	return "holidays"
}
