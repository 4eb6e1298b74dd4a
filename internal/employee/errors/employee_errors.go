package employeeerrors

import (
	"net/http"

	"github.com/abi765/payvault-app/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"employee code already exists",
		http.StatusConflict,
	)
	ErrBankAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"bank account already exists for another employee",
		http.StatusConflict,
	)
	ErrEmployeeHasPayments = apperror.New(
		apperror.CodeConflict,
		"employee has salary payments and cannot be deleted",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
