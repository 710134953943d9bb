package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hashed)
	require.NoError(t, ComparePassword(hashed, "s3cret"))
	require.Error(t, ComparePassword(hashed, "other"))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost)
	require.ErrorIs(t, err, apperrors.ErrInvalidValue)
}
