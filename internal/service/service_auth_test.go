package service

import (
	"context"
	"testing"
	"time"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signAdminToken(t *testing.T, key, issuer, subject string, ttl time.Duration) string {
	t.Helper()
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}).SignedString([]byte(key))
	require.NoError(t, err)
	return signed
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: "secret", TokenIssuer: "cms-admin"}, logger.Nop())

	tests := []struct {
		name      string
		token     string
		wantActor string
		wantErr   bool
	}{
		{
			name:      "valid",
			token:     signAdminToken(t, "secret", "cms-admin", testActorID, time.Hour),
			wantActor: testActorID,
		},
		{
			name:    "expired",
			token:   signAdminToken(t, "secret", "cms-admin", testActorID, -time.Minute),
			wantErr: true,
		},
		{
			name:    "foreign issuer",
			token:   signAdminToken(t, "secret", "someone-else", testActorID, time.Hour),
			wantErr: true,
		},
		{
			name:    "wrong key",
			token:   signAdminToken(t, "other", "cms-admin", testActorID, time.Hour),
			wantErr: true,
		},
		{
			name:    "no subject",
			token:   signAdminToken(t, "secret", "cms-admin", "", time.Hour),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.ParseToken(context.Background(), tt.token)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantActor, token.ActorID)
		})
	}
}
