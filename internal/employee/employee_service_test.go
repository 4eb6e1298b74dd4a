package employee_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/abi765/payvault-app/internal/employee"
	employeeerrors "github.com/abi765/payvault-app/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn     func(ctx context.Context, emp *employee.Employee) error
	findAllFn    func(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.Employee, error)
	findByIDFn   func(ctx context.Context, id string) (*employee.Employee, error)
	listActiveFn func(ctx context.Context) ([]employee.Employee, error)
	updateFn     func(ctx context.Context, emp *employee.Employee) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, emp *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	if f.listActiveFn != nil {
		return f.listActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, emp *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, emp)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeEmployeeRepository{}
	svc := employee.NewService(db, repo)

	return &employeeServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func strPtr(v string) *string { return &v }

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults to active", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
			created = emp
			return nil
		}

		expectTx(t, deps.sqlMock, true)
		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode:      "EMP-001",
			FullName:          "Jane Doe",
			BankAccountNumber: strPtr("000111222333"),
			Salary:            5000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "EMP-001", resp.EmployeeCode)
		assert.Equal(t, employee.StatusActive, resp.Status)
		assert.Equal(t, int64(5000), created.Salary)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee code", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_code"}
		}

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode: "EMP-001",
			FullName:     "Jane Doe",
			Salary:       5000,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeCodeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate bank account", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.createFn = func(ctx context.Context, emp *employee.Employee) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_bank_account"}
		}

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			EmployeeCode:      "EMP-002",
			FullName:          "John Roe",
			BankAccountNumber: strPtr("000111222333"),
			Salary:            6000,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrBankAccountAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, uuid.New().String())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*employee.Employee, error) {
		return &employee.Employee{
			ID:           id,
			EmployeeCode: "EMP-001",
			FullName:     "Jane Doe",
			Address:      strPtr("12 Old Lane"),
			Salary:       5000,
			Status:       employee.StatusActive,
		}, nil
	}

	var saved *employee.Employee
	deps.repo.updateFn = func(ctx context.Context, emp *employee.Employee) error {
		saved = emp
		return nil
	}

	newSalary := int64(5500)
	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Update(ctx, id.String(), employee.UpdateEmployeeRequest{
		Salary: &newSalary,
		Status: strPtr(employee.StatusOnLeave),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(5500), resp.Salary)
	assert.Equal(t, employee.StatusOnLeave, resp.Status)
	// untouched fields survive a partial update
	assert.Equal(t, "Jane Doe", saved.FullName)
	assert.Equal(t, "12 Old Lane", *saved.Address)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, EmployeeCode: "EMP-001", Status: employee.StatusActive}, nil
		}

		deleted := ""
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			deleted = gotID
			return nil
		}

		expectTx(t, deps.sqlMock, true)
		err := deps.service.Delete(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), deleted)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee has payments", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		defer deps.db.Close()

		deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*employee.Employee, error) {
			return &employee.Employee{ID: id, EmployeeCode: "EMP-001", Status: employee.StatusActive}, nil
		}
		deps.repo.deleteFn = func(ctx context.Context, gotID string) error {
			return &pgconn.PgError{Code: "23503", ConstraintName: "fk_salary_payment_employee"}
		}

		expectTx(t, deps.sqlMock, false)
		err := deps.service.Delete(ctx, id.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeHasPayments)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()

	deps := setupEmployeeServiceTest(t)
	defer deps.db.Close()

	var gotFilter employee.GetEmployeesFilterRequest
	deps.repo.findAllFn = func(ctx context.Context, filter employee.GetEmployeesFilterRequest) ([]employee.Employee, error) {
		gotFilter = filter
		return []employee.Employee{
			{ID: uuid.New(), EmployeeCode: "EMP-001", FullName: "Jane Doe", Salary: 5000, Status: employee.StatusActive},
			{ID: uuid.New(), EmployeeCode: "EMP-002", FullName: "John Roe", Salary: 6000, Status: employee.StatusActive},
		}, nil
	}

	resp, err := deps.service.GetAll(ctx, employee.GetEmployeesFilterRequest{Status: employee.StatusActive, Search: "doe"})

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, employee.StatusActive, gotFilter.Status)
	assert.Equal(t, "doe", gotFilter.Search)
}
