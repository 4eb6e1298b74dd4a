package employee

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on_leave"
)

// Employee is a roster record. EmployeeCode is the external identifier
// operators use; it is unique across the whole roster, as is the bank
// account number when one is present.
type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_employee_code"`
	FullName          string    `gorm:"type:varchar(100);not null"`
	Address           *string   `gorm:"type:text"`
	BankAccountNumber *string   `gorm:"type:varchar(50);uniqueIndex:uq_employee_bank_account"`
	BankName          *string   `gorm:"type:varchar(100)"`
	BankBranch        *string   `gorm:"type:varchar(100)"`
	IFSCCode          *string   `gorm:"type:varchar(20)"`
	Salary            int64     `gorm:"type:bigint;not null"`
	Status            string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusInactive, StatusOnLeave:
		return true
	}
	return false
}
