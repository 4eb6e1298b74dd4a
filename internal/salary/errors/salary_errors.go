package salaryerrors

import (
	"net/http"

	"github.com/abi765/payvault-app/internal/shared/apperror"
)

var (
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payment id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusValue = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of pending, processed, failed",
		http.StatusBadRequest,
	)
	ErrNoActiveEmployees = apperror.New(
		apperror.CodeInvalidState,
		"no active employees to generate salary for",
		http.StatusBadRequest,
	)
	ErrPaymentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary payment not found",
		http.StatusNotFound,
	)
	ErrPaymentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"salary payment already exists for this employee and month",
		http.StatusConflict,
	)
)
