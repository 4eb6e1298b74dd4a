package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/abi765/payvault-app/internal/employee/errors"
	"github.com/abi765/payvault-app/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_employee_code":
				return employeeerrors.ErrEmployeeCodeAlreadyExists
			case "uq_employee_bank_account":
				return employeeerrors.ErrBankAccountAlreadyExists
			}
		case "23503":
			// salary_payments still reference this employee
			return employeeerrors.ErrEmployeeHasPayments
		}
		// class 08 = connection exceptions
		if strings.HasPrefix(pgErr.Code, "08") {
			return apperror.ErrStoreUnavailable
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_code") {
		return employeeerrors.ErrEmployeeCodeAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_bank_account") {
		return employeeerrors.ErrBankAccountAlreadyExists
	}

	return err
}
