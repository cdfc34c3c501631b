package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrNoSubject = errors.New("token carries no user id claim")

// CurrentUserID extracts the shopper id from a verified token, as set by
// the auth backend in the user_id claim.
func CurrentUserID(t *jwt.Token) (uuid.UUID, error) {
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrNoSubject
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, ErrNoSubject
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoSubject
	}
	return id, nil
}
