package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

func TestParseUserStatus_CaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  UserStatus
	}{
		{"active", UserStatusActive},
		{"ACTIVE", UserStatusActive},
		{"Active", UserStatusActive},
		{"aCtIvE", UserStatusActive},
		{"inactive", UserStatusInactive},
		{"Suspended", UserStatusSuspended},
		{" suspended ", UserStatusSuspended},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseUserStatus(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, string(tt.want), got.String())
		})
	}
}

func TestParseUserStatus_RejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "enabled", "ACTIVATED", "deleted", "active!"} {
		_, err := ParseUserStatus(input)
		require.ErrorIs(t, err, apperrors.ErrInvalidEnumValue, "input %q", input)
	}
}

func TestParseDocumentType(t *testing.T) {
	t.Parallel()

	got, err := ParseDocumentType("passport")
	require.NoError(t, err)
	require.Equal(t, DocumentTypePassport, got)

	got, err = ParseDocumentType("Id")
	require.NoError(t, err)
	require.Equal(t, DocumentTypeID, got)

	_, err = ParseDocumentType("licence")
	require.ErrorIs(t, err, apperrors.ErrInvalidEnumValue)
}

func TestParseDonationType(t *testing.T) {
	t.Parallel()

	got, err := ParseDonationType("in_kind")
	require.NoError(t, err)
	require.Equal(t, DonationTypeInKind, got)
	require.Equal(t, "IN_KIND", got.String())

	_, err = ParseDonationType("in kind")
	require.ErrorIs(t, err, apperrors.ErrInvalidEnumValue)
}

func TestInvalidEnumValue_Details(t *testing.T) {
	t.Parallel()

	_, err := ParseUserStatus("gone")
	de := apperrors.ToDomainError(err)
	require.Equal(t, "status", de.Details["field"])
	require.Equal(t, "gone", de.Details["value"])
	require.Equal(t, []string{"ACTIVE", "INACTIVE", "SUSPENDED"}, de.Details["allowed"])
}
