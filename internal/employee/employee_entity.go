package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the read model the leave pipeline needs. Employees are owned
// by the HR core and never written from here.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;index"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid"`
	DepartmentName string     `gorm:"->;column:department_name"`
	FullName       string
	Email          string
	Level          string `gorm:"type:varchar(50)"`
	Location       *string
	Grade          *string
	HireDate       *time.Time `gorm:"type:date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// TenureMonths counts whole months since the hire date, or since the record
// was created when no hire date is known.
func (e Employee) TenureMonths(now time.Time) int {
	since := e.CreatedAt
	if e.HireDate != nil {
		since = *e.HireDate
	}
	if since.IsZero() || since.After(now) {
		return 0
	}

	months := (now.Year()-since.Year())*12 + int(now.Month()-since.Month())
	if now.Day() < since.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

func (e Employee) RoleLevel() string {
	if e.Level == "" {
		return "EMPLOYEE"
	}
	return e.Level
}

func (e Employee) Department() string {
	if e.DepartmentName == "" {
		return "Unknown"
	}
	return e.DepartmentName
}
