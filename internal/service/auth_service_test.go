package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-club-registry-api/internal/models"
	appErrors "github.com/noah-isme/sma-club-registry-api/pkg/errors"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func validClaims(subject string) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		Subject:   subject,
		Audience:  jwt.ClaimStrings{"authenticated"},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
}

func newAuthService(users *userRepoStub) *AuthService {
	return NewAuthService(users, nil, AuthConfig{AccessTokenSecret: testSecret, Audience: "authenticated"})
}

func TestAuthenticateResolvesUser(t *testing.T) {
	users := newUserRepoStub(models.User{ID: userID, Role: models.RoleStudent, Student: int64Ptr(1)})
	svc := newAuthService(users)

	user, err := svc.Authenticate(context.Background(), signToken(t, testSecret, validClaims(userID.String())))
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	users := newUserRepoStub(models.User{ID: userID, Role: models.RoleStudent})
	svc := newAuthService(users)

	expired := validClaims(userID.String())
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	otherAudience := validClaims(userID.String())
	otherAudience.Audience = jwt.ClaimStrings{"someone-else"}

	cases := map[string]string{
		"wrong secret": signToken(t, "other", validClaims(userID.String())),
		"expired":      signToken(t, testSecret, expired),
		"audience":     signToken(t, testSecret, otherAudience),
		"non uuid sub": signToken(t, testSecret, validClaims("42")),
		"unknown user": signToken(t, testSecret, validClaims(uuid.NewString())),
		"not a jwt":    "garbage",
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Authenticate(context.Background(), token)
			assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
		})
	}
}

func TestAuthenticateRejectsOtherAlgorithms(t *testing.T) {
	svc := newAuthService(newUserRepoStub())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims(userID.String())).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
