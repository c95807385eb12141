package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"horizon/infras/jwt"
	"horizon/internal/domains/auth/model/dto"
	"horizon/shared/constant"
)

func TestRegisterRequest_ToUserModel(t *testing.T) {
	fullName := "Test User"
	req := dto.RegisterRequest{
		Email:    "test@example.com",
		Password: "plain-password",
		FullName: &fullName,
	}

	user := req.ToUserModel("registrar", "hashed-password")

	assert.NotEmpty(t, user.ID, "expected ID to be generated")
	assert.Equal(t, req.Email, user.Email)
	assert.Equal(t, "hashed-password", user.Password, "model must carry the hash, not the plain password")
	assert.Equal(t, constant.RoleUser, user.Level)
	assert.Equal(t, req.FullName, user.FullName)
	assert.False(t, user.IsVerified)
	assert.True(t, user.Active)
	assert.Equal(t, "registrar", user.CreatedBy)
	assert.Equal(t, "registrar", user.ModifiedBy)
	assert.False(t, user.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, user.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, tokenPair.ExpiresIn, response.ExpiresIn)
}
