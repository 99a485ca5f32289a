// Copyright (c) 2026 Geodir Authors. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/placewise/geodir/internal/platform/apperr"
)

// uniqueViolation is the Postgres SQLSTATE for a unique-constraint failure.
const uniqueViolation = "23505"

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
//
// Classification:
//   - pgx.ErrNoRows          -> 404 for the named resource
//   - unique violation 23505 -> 409 conflict
//   - anything else          -> 500 with the store message passed through
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Store(err)
}
