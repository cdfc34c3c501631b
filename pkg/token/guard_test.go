package token

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.New(jwt.SigningMethodHS256)
	claims := tok.Claims.(jwt.MapClaims)
	claims["user_id"] = "8a9f2c1e-8a40-4dc5-9100-45f8e3f1a001"
	claims["exp"] = exp.Unix()
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func tokenWithoutExpiry(t *testing.T) string {
	t.Helper()
	tok := jwt.New(jwt.SigningMethodHS256)
	tok.Claims.(jwt.MapClaims)["user_id"] = "8a9f2c1e-8a40-4dc5-9100-45f8e3f1a001"
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestGuard_Evaluate(t *testing.T) {
	now := time.Now()
	g := NewGuard(testLogger(), nil)

	tests := []struct {
		name       string
		credential string
		want       SessionState
	}{
		{"absent", "", NoCredential},
		{"valid for an hour", signedToken(t, now.Add(time.Hour)), ValidCredential},
		{"expired ten seconds ago", signedToken(t, now.Add(-10*time.Second)), ExpiredCredential},
		{"expiry exactly now", signedToken(t, now), ExpiredCredential},
		{"malformed", "not-a-jwt", ExpiredCredential},
		{"tampered segments", "aaaa.bbbb.cccc", ExpiredCredential},
		{"no expiry claim", tokenWithoutExpiry(t), ExpiredCredential},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Evaluate(tt.credential, now))
		})
	}
}

func TestGuard_EvaluateIsIdempotent(t *testing.T) {
	now := time.Now()
	g := NewGuard(testLogger(), nil)
	cred := signedToken(t, now.Add(time.Hour))

	first := g.Evaluate(cred, now)
	second := g.Evaluate(cred, now)
	assert.Equal(t, first, second)
}

func TestGuard_EvaluateDerivesFreshFromNow(t *testing.T) {
	g := NewGuard(testLogger(), nil)
	now := time.Now()
	cred := signedToken(t, now.Add(time.Minute))

	assert.Equal(t, ValidCredential, g.Evaluate(cred, now))
	// Same credential, later clock: state is recomputed, not cached.
	assert.Equal(t, ExpiredCredential, g.Evaluate(cred, now.Add(2*time.Minute)))
}

func TestRouteFor(t *testing.T) {
	assert.Equal(t, StayOnLogin, RouteFor(NoCredential))
	assert.Equal(t, StayOnLoginExpired, RouteFor(ExpiredCredential))
	assert.Equal(t, RedirectToDashboard, RouteFor(ValidCredential))
}

func TestCurrentUserID(t *testing.T) {
	tok := jwt.New(jwt.SigningMethodHS256)
	claims := tok.Claims.(jwt.MapClaims)
	claims["user_id"] = "8a9f2c1e-8a40-4dc5-9100-45f8e3f1a001"

	id, err := CurrentUserID(tok)
	require.NoError(t, err)
	assert.Equal(t, "8a9f2c1e-8a40-4dc5-9100-45f8e3f1a001", id.String())

	delete(claims, "user_id")
	_, err = CurrentUserID(tok)
	assert.ErrorIs(t, err, ErrNoSubject)
}
