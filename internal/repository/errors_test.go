package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: ConstraintUserEmail}, apperrors.ErrConstraintViolation},
		{"foreign key", &pgconn.PgError{Code: "23503", ConstraintName: ConstraintAdopterUser}, apperrors.ErrReferentialIntegrity},
		{"not null", &pgconn.PgError{Code: "23502", ColumnName: "email"}, apperrors.ErrMissingRequiredField},
		{"check", &pgconn.PgError{Code: "23514", ConstraintName: "adopter_monthly_income_check"}, apperrors.ErrInvalidValue},
		{"numeric overflow", &pgconn.PgError{Code: "22003"}, apperrors.ErrInvalidValue},
		{"trigger", &pgconn.PgError{Code: "P0001", Message: "donation_date is immutable"}, apperrors.ErrInvalidValue},
		{"connection class", &pgconn.PgError{Code: "08006"}, apperrors.ErrStorageUnavailable},
		{"too many connections", &pgconn.PgError{Code: "53300"}, apperrors.ErrStorageUnavailable},
		{"admin shutdown", &pgconn.PgError{Code: "57P01"}, apperrors.ErrStorageUnavailable},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), apperrors.ErrConstraintViolation},
		{"no rows", pgx.ErrNoRows, apperrors.ErrNotFound},
		{"deadline", context.DeadlineExceeded, apperrors.ErrStorageUnavailable},
		{"closed pool", errors.New("closed pool"), apperrors.ErrStorageUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, mapError(tt.err, "user"), tt.want)
		})
	}
}

func TestMapError_KeepsConstraintName(t *testing.T) {
	err := mapError(&pgconn.PgError{Code: "23505", ConstraintName: ConstraintAdopterDocumentNumber}, "adopter")

	var de *apperrors.DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, ConstraintAdopterDocumentNumber, de.Details["constraint"])
}

func TestMapError_PassesThrough(t *testing.T) {
	require.NoError(t, mapError(nil, "user"))

	original := apperrors.NewNotFound("user", nil)
	require.Same(t, original, mapError(original, "user"))

	unknown := errors.New("syntax")
	err := mapError(unknown, "user")
	require.ErrorIs(t, err, unknown)
	var de *apperrors.DomainError
	require.False(t, errors.As(err, &de))
}
