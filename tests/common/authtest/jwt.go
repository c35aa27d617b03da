//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"tripmatch/internal/pkg/config"
	"tripmatch/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(t *testing.T, opts ...jwt.Option) *jwt.Service {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	if h.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(h.cfg.Issuer))
	}
	if h.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(h.cfg.Audience))
	}
	return jwt.NewService(h.cfg.Secret, duration, opts...)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := h.service(t).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken mints a token issued two days ago; it is expired for any duration shorter than that.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := h.service(t, jwt.WithClock(past)).GenerateToken(userID)
	require.NoError(t, err)
	return token
}

// TokenWithSecret signs with a key the server does not know.
func (h *JWTHelper) TokenWithSecret(t *testing.T, secret, userID string) string {
	t.Helper()
	other := *h
	other.cfg.Secret = secret
	return other.GenerateToken(t, userID)
}
