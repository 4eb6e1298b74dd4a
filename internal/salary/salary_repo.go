package salary

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalaryFilter narrows ledger queries. A nil field means "no filter",
// never "match empty".
type SalaryFilter struct {
	Month  *string
	Status *string
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// Insert adds a payment unless the (employee, month) slot is already
	// taken; it reports false without error when the slot was occupied.
	Insert(ctx context.Context, payment *SalaryPayment) (bool, error)
	Exists(ctx context.Context, employeeID uuid.UUID, month string) (bool, error)
	FindByID(ctx context.Context, id string) (*SalaryPayment, error)
	FindAll(ctx context.Context, filter SalaryFilter) ([]SalaryPayment, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error)
	DistinctMonths(ctx context.Context) ([]string, error)
	Update(ctx context.Context, payment *SalaryPayment) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

// Insert runs through the raw executor so a batch of inserts commits or
// rolls back with the surrounding transaction. ON CONFLICT keeps a lost
// generation race from aborting the whole batch.
func (r *repository) Insert(ctx context.Context, payment *SalaryPayment) (bool, error) {
	query := `
INSERT INTO salary_payments (id, employee_id, payment_month, amount, status, notes, created_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW())
ON CONFLICT (employee_id, payment_month) DO NOTHING
`

	res, err := r.execer().ExecContext(
		ctx, query,
		payment.ID, payment.EmployeeID, payment.PaymentMonth,
		payment.Amount, payment.Status, payment.Notes,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (r *repository) Exists(ctx context.Context, employeeID uuid.UUID, month string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryPayment{}).
		Where("employee_id = ?", employeeID).
		Where("payment_month = ?", month).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*SalaryPayment, error) {
	var payment SalaryPayment
	err := r.db.WithContext(ctx).
		Table("salary_payments").
		Select("salary_payments.*, employees.full_name AS employee_name, employees.employee_code AS employee_code").
		Joins("JOIN employees ON employees.id = salary_payments.employee_id").
		Where("salary_payments.id = ?", id).
		First(&payment).Error
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *repository) FindAll(ctx context.Context, filter SalaryFilter) ([]SalaryPayment, error) {
	db := r.db.WithContext(ctx).
		Table("salary_payments").
		Select("salary_payments.*, employees.full_name AS employee_name, employees.employee_code AS employee_code").
		Joins("JOIN employees ON employees.id = salary_payments.employee_id")

	if filter.Month != nil {
		db = db.Where("salary_payments.payment_month = ?", *filter.Month)
	}
	if filter.Status != nil {
		db = db.Where("salary_payments.status = ?", *filter.Status)
	}

	var payments []SalaryPayment
	err := db.Order("salary_payments.created_at DESC").Find(&payments).Error
	return payments, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SalaryPayment, error) {
	var payments []SalaryPayment
	err := r.db.WithContext(ctx).
		Table("salary_payments").
		Select("salary_payments.*, employees.full_name AS employee_name, employees.employee_code AS employee_code").
		Joins("JOIN employees ON employees.id = salary_payments.employee_id").
		Where("salary_payments.employee_id = ?", employeeID).
		Order("salary_payments.payment_month DESC").
		Find(&payments).Error
	return payments, err
}

func (r *repository) DistinctMonths(ctx context.Context) ([]string, error) {
	var months []string
	err := r.db.WithContext(ctx).
		Table("salary_payments").
		Distinct("payment_month").
		Order("payment_month DESC").
		Pluck("payment_month", &months).Error
	return months, err
}

func (r *repository) Update(ctx context.Context, payment *SalaryPayment) error {
	query := `
UPDATE salary_payments
SET status = $2, notes = $3, processed_at = $4, processed_by = $5
WHERE id = $1
`

	_, err := r.execer().ExecContext(
		ctx, query,
		payment.ID, payment.Status, payment.Notes,
		payment.ProcessedAt, payment.ProcessedBy,
	)
	return err
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db.ConnPool
}
