package org

import (
	"errors"

	orgerrors "go-workforce/internal/org/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRoleError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orgerrors.ErrRoleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return orgerrors.ErrDuplicateRoleName
	}

	return err
}

func mapResponsibilityError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orgerrors.ErrResponsibilityNotFound
	}
	return err
}

func mapSubResponsibilityError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return orgerrors.ErrSubResponsibilityNotFound
	}
	return err
}
