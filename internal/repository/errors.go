package repository

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// Constraint names declared by the migrations. The in-memory store reports the same names.
const (
	ConstraintUserEmail             = "user_email_key"
	ConstraintAdopterDocumentNumber = "adopter_document_number_key"
	ConstraintAdopterUser           = "adopter_id_user_fkey"
	ConstraintDonationDonor         = "donation_id_donor_fkey"
)

// SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgRaiseException      = "P0001"
	pgClassConnection     = "08"
	pgClassResources      = "53"
	pgClassOperator       = "57"
)

// mapError classifies driver errors into the application error taxonomy.
func mapError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperrors.NewConstraintViolation(pgErr.ConstraintName, err)
		case pgForeignKeyViolation:
			return apperrors.NewReferentialIntegrity(pgErr.ConstraintName, err)
		case pgNotNullViolation:
			return apperrors.NewMissingRequiredField(pgErr.ColumnName)
		case pgCheckViolation, pgNumericOutOfRange, pgRaiseException:
			return apperrors.NewInvalidValue(pgErr.Message, map[string]any{"constraint": pgErr.ConstraintName})
		}
		switch {
		case strings.HasPrefix(pgErr.Code, pgClassConnection),
			strings.HasPrefix(pgErr.Code, pgClassResources),
			strings.HasPrefix(pgErr.Code, pgClassOperator):
			return apperrors.NewStorageUnavailable(err)
		}
		return fmt.Errorf("%s: db error: %w", resource, err)
	}

	if isUnavailable(err) {
		return apperrors.NewStorageUnavailable(err)
	}
	return fmt.Errorf("%s: db error: %w", resource, err)
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return strings.Contains(err.Error(), "closed pool")
}
