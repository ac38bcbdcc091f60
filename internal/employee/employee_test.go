package employee_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-leaveai/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestRepository_FindByIDAndCompany(t *testing.T) {
	companyID := uuid.New()
	empID := uuid.New()

	t.Run("found with department", func(t *testing.T) {
		db, mock := newGormMock(t)
		rows := sqlmock.NewRows([]string{"id", "company_id", "full_name", "email", "level", "department_name"}).
			AddRow(empID, companyID, "Rina", "rina@example.com", "SENIOR", "Finance")
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT employees.*, departments.name AS department_name FROM "employees"`)).
			WillReturnRows(rows)

		emp, err := employee.NewRepository(db).FindByIDAndCompany(context.Background(), companyID.String(), empID.String())

		assert.NoError(t, err)
		if assert.NotNil(t, emp) {
			assert.Equal(t, "Finance", emp.Department())
			assert.Equal(t, "SENIOR", emp.RoleLevel())
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing returns nil", func(t *testing.T) {
		db, mock := newGormMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "employees"`)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		emp, err := employee.NewRepository(db).FindByIDAndCompany(context.Background(), companyID.String(), empID.String())

		assert.NoError(t, err)
		assert.Nil(t, emp)
	})
}

func TestEmployee_TenureMonths(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	hire := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 23, employee.Employee{HireDate: &hire}.TenureMonths(now))
	assert.Equal(t, 0, employee.Employee{}.TenureMonths(now))

	future := now.AddDate(0, 1, 0)
	assert.Equal(t, 0, employee.Employee{HireDate: &future}.TenureMonths(now))

	created := employee.Employee{CreatedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 12, created.TenureMonths(now))
	assert.Equal(t, "EMPLOYEE", created.RoleLevel())
	assert.Equal(t, "Unknown", created.Department())
}
