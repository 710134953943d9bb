package errorutil_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := apperrors.NewConstraintViolation("user_email_key", errors.New("duplicate key"))

	require.ErrorIs(t, err, apperrors.ErrConstraintViolation)
	require.NotErrorIs(t, err, apperrors.ErrReferentialIntegrity)

	wrapped := fmt.Errorf("save user: %w", err)
	require.ErrorIs(t, wrapped, apperrors.ErrConstraintViolation)
}

func TestDomainError_UnwrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := apperrors.NewStorageUnavailable(cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
	require.Contains(t, err.Error(), "connection refused")
}

func TestToDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"invalid enum", apperrors.NewInvalidEnumValue("status", "gone", []string{"ACTIVE"}), apperrors.CodeInvalidEnumValue, http.StatusBadRequest},
		{"missing field", apperrors.NewMissingRequiredField("email"), apperrors.CodeMissingRequiredField, http.StatusBadRequest},
		{"constraint", apperrors.NewConstraintViolation("x", nil), apperrors.CodeConstraintViolation, http.StatusConflict},
		{"referential", apperrors.NewReferentialIntegrity("x", nil), apperrors.CodeReferentialIntegrity, http.StatusUnprocessableEntity},
		{"storage", apperrors.NewStorageUnavailable(nil), apperrors.CodeStorageUnavailable, http.StatusServiceUnavailable},
		{"not found", apperrors.NewNotFound("user", nil), apperrors.CodeNotFound, http.StatusNotFound},
		{"sentinel without status", apperrors.ErrConstraintViolation, apperrors.CodeConstraintViolation, http.StatusConflict},
		{"deadline", context.DeadlineExceeded, apperrors.CodeStorageUnavailable, http.StatusServiceUnavailable},
		{"plain", errors.New("boom"), apperrors.CodeInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			de := apperrors.ToDomainError(tt.err)
			require.NotNil(t, de)
			require.Equal(t, tt.wantCode, de.Code)
			require.Equal(t, tt.wantStatus, de.HTTPStatus)
		})
	}

	require.Nil(t, apperrors.ToDomainError(nil))
}

func TestToDomainError_InternalHidesCause(t *testing.T) {
	de := apperrors.ToDomainError(errors.New("pq: secret detail"))
	require.Equal(t, "internal server error", de.Message)
}
