package jwthelper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/canteen-api/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("secret")
	user := domain.User{ID: uuid.New(), Role: domain.RoleAdminStand}

	token, err := GenerateToken(key, user, "curl/8.0", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{ID: user.ID, Role: domain.RoleAdminStand}, claims.Principal())
	assert.Equal(t, "curl/8.0", claims.UserAgent)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	key := []byte("secret")
	user := domain.User{ID: uuid.New(), Role: domain.RoleStudent}

	expired, err := GenerateToken(key, user, "ua", -time.Minute)
	require.NoError(t, err)
	otherKey, err := GenerateToken([]byte("other"), user, "ua", time.Hour)
	require.NoError(t, err)
	noRole, err := GenerateToken(key, domain.User{ID: uuid.New()}, "ua", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "expired", token: expired},
		{name: "wrong key", token: otherKey},
		{name: "missing role", token: noRole},
		{name: "garbage", token: "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(key, tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
