package orgerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrResponsibilityNotFound = apperror.New(
		apperror.CodeNotFound,
		"responsibility not found",
		http.StatusNotFound,
	)
	ErrSubResponsibilityNotFound = apperror.New(
		apperror.CodeNotFound,
		"sub-responsibility not found",
		http.StatusNotFound,
	)
	ErrInvalidRoleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid role id",
		http.StatusBadRequest,
	)
	ErrInvalidResponsibilityID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid responsibility id",
		http.StatusBadRequest,
	)
	ErrInvalidSubResponsibilityID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid sub-responsibility id",
		http.StatusBadRequest,
	)
	ErrDuplicateRoleName = apperror.New(
		apperror.CodeConflict,
		"a role with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidSnapshot = apperror.New(
		apperror.CodeInvalidFormat,
		"snapshot must contain roles, responsibilities and subResponsibilities",
		http.StatusBadRequest,
	)
	ErrSnapshotDanglingRef = apperror.New(
		apperror.CodeInvalidFormat,
		"snapshot contains a child referencing a missing parent",
		http.StatusBadRequest,
	)
)
