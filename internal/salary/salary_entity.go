package salary

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
	StatusFailed    = "failed"
)

// MonthLayout is the payment month token format. The token is stored
// and compared as text; it is never interpreted as a point in time.
const MonthLayout = "2006-01"

// SalaryPayment is one ledger entry. The (employee_id, payment_month)
// pair is unique at the database level; generation relies on that
// constraint to stay idempotent under concurrent calls. Amount is
// captured from the employee's salary at generation time and never
// recalculated.
type SalaryPayment struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID   uuid.UUID  `gorm:"type:uuid;not null;index:uq_salary_payment_month,unique"`
	PaymentMonth string     `gorm:"type:varchar(7);not null;index:uq_salary_payment_month,unique"`
	Amount       int64      `gorm:"type:bigint;not null"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending'"`
	ProcessedAt  *time.Time `gorm:"index"`
	ProcessedBy  *uuid.UUID `gorm:"type:uuid"`
	Notes        *string    `gorm:"type:text"`
	CreatedAt    time.Time

	// Populated by list joins, not stored on this table.
	EmployeeName string `gorm:"->;-:migration"`
	EmployeeCode string `gorm:"->;-:migration"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessed, StatusFailed:
		return true
	}
	return false
}
