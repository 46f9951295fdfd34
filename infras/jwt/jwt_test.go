package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/config"
	"hotelier/infras/jwt"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "hotelier-test"
	cfg.JWT.AccessSecret = "access-secret"
	cfg.JWT.RefreshSecret = "refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	return cfg
}

func employeeIdentity() jwt.Identity {
	return jwt.Identity{
		UserID:      "employee-1",
		Email:       "employee@example.com",
		Role:        "employee",
		HotelID:     3,
		CompanyName: "Marriott",
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair(employeeIdentity())
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(15*60), pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "employee-1", claims.UserID)
	assert.Equal(t, "employee", claims.Role)
	assert.Equal(t, 3, claims.HotelID)
	assert.Equal(t, "Marriott", claims.CompanyName)
	assert.Equal(t, jwt.AccessToken, claims.Type)
}

func TestValidateToken_WrongType(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair(employeeIdentity())
	require.NoError(t, err)

	// A refresh token presented as an access token fails on the
	// signature first since the secrets differ.
	_, err = svc.ValidateToken(pair.RefreshToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.New(testConfig())

	_, err := svc.ValidateToken("not-a-token", jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_TamperedSecret(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair(employeeIdentity())
	require.NoError(t, err)

	other := testConfig()
	other.JWT.AccessSecret = "a-different-secret"

	_, err = jwt.New(other).ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AccessExpireMin = -1

	svc := jwt.New(cfg)

	pair, err := svc.GenerateTokenPair(employeeIdentity())
	require.NoError(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, jwt.AccessToken)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestRefreshTokens(t *testing.T) {
	svc := jwt.New(testConfig())

	pair, err := svc.GenerateTokenPair(employeeIdentity())
	require.NoError(t, err)

	refreshed, err := svc.RefreshTokens(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(refreshed.AccessToken, jwt.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "employee-1", claims.UserID)
	assert.Equal(t, 3, claims.HotelID)

	_, err = svc.RefreshTokens(pair.AccessToken)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer header", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing bearer prefix", header: "Token abc.def.ghi", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
