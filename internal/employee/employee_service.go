package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "github.com/abi765/payvault-app/internal/employee/errors"

	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status := req.Status
	if status == "" {
		status = StatusActive
	}

	emp := &Employee{
		ID:                uuid.New(),
		EmployeeCode:      req.EmployeeCode,
		FullName:          req.FullName,
		Address:           req.Address,
		BankAccountNumber: req.BankAccountNumber,
		BankName:          req.BankName,
		BankBranch:        req.BankBranch,
		IFSCCode:          req.IFSCCode,
		Salary:            req.Salary,
		Status:            status,
	}

	if err := qtx.Create(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(
	ctx context.Context,
	filter GetEmployeesFilterRequest,
) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(employees), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id string,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	emp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	applyUpdate(emp, req)

	if err := qtx.Update(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	return mapToResponse(*emp), nil
}

func (s *service) Delete(
	ctx context.Context,
	id string,
) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

// applyUpdate copies only the fields the request actually carries; a
// nil pointer leaves the stored value alone.
func applyUpdate(emp *Employee, req UpdateEmployeeRequest) {
	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.BankAccountNumber != nil {
		emp.BankAccountNumber = req.BankAccountNumber
	}
	if req.BankName != nil {
		emp.BankName = req.BankName
	}
	if req.BankBranch != nil {
		emp.BankBranch = req.BankBranch
	}
	if req.IFSCCode != nil {
		emp.IFSCCode = req.IFSCCode
	}
	if req.Salary != nil {
		emp.Salary = *req.Salary
	}
	if req.Status != nil {
		emp.Status = *req.Status
	}
}

func mapToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                emp.ID.String(),
		EmployeeCode:      emp.EmployeeCode,
		FullName:          emp.FullName,
		Address:           emp.Address,
		BankAccountNumber: emp.BankAccountNumber,
		BankName:          emp.BankName,
		BankBranch:        emp.BankBranch,
		IFSCCode:          emp.IFSCCode,
		Salary:            emp.Salary,
		Status:            emp.Status,
		CreatedAt:         emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         emp.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(employees []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i, emp := range employees {
		res[i] = mapToResponse(emp)
	}
	return res
}
