package payrollerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be positive",
		http.StatusBadRequest,
	)
	ErrInvalidComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"component type must be ALLOWANCE, DEDUCTION or BONUS",
		http.StatusBadRequest,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"salary component amounts cannot be negative",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollExists = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this employee and period",
		http.StatusConflict,
	)
	ErrPayrollLocked = apperror.New(
		apperror.CodeInvalidState,
		"a paid payroll can no longer be modified",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	)
	ErrPaymentDateRequired = apperror.New(
		apperror.CodeInvalidInput,
		"payment_date is required when status is PAID",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyPending = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be deleted while status is PENDING",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
)
