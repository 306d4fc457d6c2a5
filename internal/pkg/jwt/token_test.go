package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openride/tripgate/internal/pkg/models"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret-key-for-jwt-signing",
			Expiration: 60, // minutes
			Issuer:     "tripgate-test",
		},
	}
}

func TestGenerateToken(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		role   string
	}{
		{
			name:   "Driver token",
			userID: uuid.NewString(),
			role:   "driver",
		},
		{
			name:   "Customer token",
			userID: uuid.NewString(),
			role:   "customer",
		},
		{
			name:   "Empty role still signs",
			userID: uuid.NewString(),
			role:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenString, expiresAt, err := GenerateToken(tt.userID, tt.role, getTestConfig())

			require.NoError(t, err)
			assert.NotEmpty(t, tokenString)
			assert.Greater(t, expiresAt, time.Now().Unix())
		})
	}
}

func TestValidateToken_RoundTrip(t *testing.T) {
	cfg := getTestConfig()
	userID := uuid.NewString()

	tokenString, _, err := GenerateToken(userID, "driver", cfg)
	require.NoError(t, err)

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "driver", claims.Role)
	assert.Equal(t, cfg.JWT.Issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := getTestConfig()

	tokenString, _, err := GenerateToken(uuid.NewString(), "customer", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "a-different-secret")

	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	cfg := getTestConfig()

	claims := models.WebSocketClaims{
		UserID: uuid.NewString(),
		Role:   "driver",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.JWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, cfg.JWT.Secret)

	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", getTestConfig().JWT.Secret)

	assert.Error(t, err)
}
