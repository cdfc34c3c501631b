package token

import (
	"log/slog"
	"time"

	"github.com/aamart/storefront/pkg/observability"
	"github.com/golang-jwt/jwt/v5"
)

// SessionState classifies the stored credential at a point in time. It is
// derived fresh on every evaluation, never cached.
type SessionState int

const (
	// NoCredential means nothing is stored.
	NoCredential SessionState = iota
	// ValidCredential means the credential decodes and its expiry is in the
	// future.
	ValidCredential
	// ExpiredCredential means the credential is past its expiry, or could
	// not be decoded at all (fail-closed).
	ExpiredCredential
)

func (s SessionState) String() string {
	switch s {
	case NoCredential:
		return "no_credential"
	case ValidCredential:
		return "valid_credential"
	case ExpiredCredential:
		return "expired_credential"
	default:
		return "unknown"
	}
}

// Route is the navigation consequence of a SessionState on the login
// surface.
type Route int

const (
	// StayOnLogin keeps the shopper on the login surface with no message.
	StayOnLogin Route = iota
	// StayOnLoginExpired keeps the shopper on the login surface and shows
	// the session-expired notice.
	StayOnLoginExpired
	// RedirectToDashboard sends the shopper away from the login surface.
	RedirectToDashboard
)

// Guard decodes the stored credential and classifies it.
//
// The decode is deliberately unverified: the embedded expiry is advisory,
// a UX optimization. Authoritative validation happens on every protected
// request server-side; Guard is not a security boundary.
type Guard struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewGuard creates a session guard. metrics may be nil.
func NewGuard(logger *slog.Logger, metrics *observability.Metrics) *Guard {
	return &Guard{logger: logger, metrics: metrics}
}

// Evaluate classifies credential against now. It is read-only and
// idempotent: same inputs, same state, no hidden mutation.
func (g *Guard) Evaluate(credential string, now time.Time) SessionState {
	if credential == "" {
		return NoCredential
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(credential, claims); err != nil {
		// Fail closed: an undecodable credential behaves like an expired
		// one. The detail goes to the sink, not to the shopper.
		g.logger.Warn("credential decode failed", "error", err)
		g.metrics.CredentialDecodeFailure()
		return ExpiredCredential
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		g.logger.Warn("credential has no usable expiry claim", "error", err)
		g.metrics.CredentialDecodeFailure()
		return ExpiredCredential
	}

	if !exp.Time.After(now) {
		return ExpiredCredential
	}
	return ValidCredential
}

// RouteFor maps a session state to its navigation consequence. Pure
// function; repeated evaluation triggers no further side effects.
func RouteFor(state SessionState) Route {
	switch state {
	case ValidCredential:
		return RedirectToDashboard
	case ExpiredCredential:
		return StayOnLoginExpired
	default:
		return StayOnLogin
	}
}
