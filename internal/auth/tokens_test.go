package auth

import (
	"testing"
	"time"

	"github.com/medxhealth/medx/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("64f000000000000000000001", "hr@citygen.example", models.RoleHospital, "64f000000000000000000002")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000001", claims.AccountID())
	assert.Equal(t, "hr@citygen.example", claims.Email)
	assert.Equal(t, models.RoleHospital, claims.Role)
	assert.Equal(t, "64f000000000000000000002", claims.HospitalID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("64f000000000000000000001", "a@b.example", models.RoleAdmin, "")
	require.NoError(t, err)

	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("64f000000000000000000001", "a@b.example", models.RoleAdmin, "")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, raw := range []string{"", "not.a.jwt", "eyJhbGciOiJub25lIn0.e30."} {
		_, err := tm.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}
