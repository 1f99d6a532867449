package services

import (
	"context"
	"testing"
	"time"

	"github.com/medxhealth/medx/internal/auth"
	"github.com/medxhealth/medx/internal/models"
	"github.com/medxhealth/medx/internal/repositories/memory"
	"github.com/medxhealth/medx/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture() (AuthService, *memory.UserRepo, *memory.HospitalRepo, *auth.TokenManager) {
	users := memory.NewUserRepo()
	hospitals := memory.NewHospitalRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(users, hospitals, tokens), users, hospitals, tokens
}

func validRegisterInput() RegisterInput {
	return RegisterInput{
		HospitalName:      "City General",
		ContactPersonName: "Dana Reyes",
		Email:             "hr@citygen.example",
		Password:          "sup3rsecret",
		Address:           "12 Main Street, NY",
		Phone:             "5551234567",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, hospitals, tokens := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegisterInput()))

	token, user, err := svc.Login(ctx, "hr@citygen.example", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleHospital, user.Role)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleHospital, claims.Role)
	assert.Equal(t, user.ID.Hex(), claims.AccountID())

	// the claim carries the hospital created at registration
	h, err := hospitals.FindByCreator(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, h.ID.Hex(), claims.HospitalID)
	assert.False(t, h.Verified)
	assert.Equal(t, "City General", h.Name)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegisterInput()))

	err := svc.Register(ctx, validRegisterInput())
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"short hospital name", func(in *RegisterInput) { in.HospitalName = "A" }},
		{"short contact name", func(in *RegisterInput) { in.ContactPersonName = "B" }},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }},
		{"short password", func(in *RegisterInput) { in.Password = "short" }},
		{"short address", func(in *RegisterInput) { in.Address = "x" }},
		{"short phone", func(in *RegisterInput) { in.Phone = "123" }},
		{"bad website", func(in *RegisterInput) { in.Website = "notaurl" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validRegisterInput()
			tc.mutate(&in)
			err := svc.Register(ctx, in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
		})
	}
}

func TestRegisterAcceptsOptionalWebsite(t *testing.T) {
	svc, _, hospitals, _ := newAuthFixture()
	ctx := context.Background()

	in := validRegisterInput()
	in.Website = "https://citygen.example"
	require.NoError(t, svc.Register(ctx, in))

	all, err := hospitals.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "https://citygen.example", all[0].Website)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegisterInput()))

	_, _, err := svc.Login(ctx, "hr@citygen.example", "wrong-password")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))

	_, _, err = svc.Login(ctx, "nobody@citygen.example", "sup3rsecret")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeUnauthorized))
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, validRegisterInput()))

	_, user, err := svc.Login(ctx, "  HR@CityGen.example ", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "hr@citygen.example", user.Email)
}
