package salary

import (
	"database/sql/driver"
	"errors"
	"strings"

	salaryerrors "github.com/abi765/payvault-app/internal/salary/errors"
	"github.com/abi765/payvault-app/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrPaymentNotFound
	}

	if errors.Is(err, driver.ErrBadConn) {
		return apperror.ErrStoreUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_payment_month" {
			return salaryerrors.ErrPaymentAlreadyExists
		}
		// class 08 = connection exceptions
		if strings.HasPrefix(pgErr.Code, "08") {
			return apperror.ErrStoreUnavailable
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_payment_month") {
		return salaryerrors.ErrPaymentAlreadyExists
	}

	return err
}
