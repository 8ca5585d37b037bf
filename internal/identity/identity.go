// Package identity resolves bearer tokens issued by the account service to user ids.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that cannot be trusted.
var ErrInvalidToken = errors.New("invalid or expired token")

// Directory verifies a bearer token and returns the user it was issued to.
type Directory interface {
	Resolve(ctx context.Context, token string) (uint, error)
}

// JWTDirectory verifies HS256 tokens carrying the user id in the subject claim.
type JWTDirectory struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTDirectory creates a directory that trusts tokens signed with secret for issuer and audience.
func NewJWTDirectory(secret, issuer, audience string) *JWTDirectory {
	return &JWTDirectory{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		now:      time.Now,
	}
}

// Resolve validates the token signature, expiry, issuer and audience and returns the subject as a user id.
func (d *JWTDirectory) Resolve(_ context.Context, tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return d.secret, nil
	},
		jwt.WithIssuer(d.issuer),
		jwt.WithAudience(d.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(d.now),
	)
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return 0, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("%w: invalid subject %q", ErrInvalidToken, sub)
	}
	return uint(userID), nil
}

// IssueToken signs a token for userID valid for ttl. Used by seeding and tests;
// production tokens come from the account service.
func (d *JWTDirectory) IssueToken(userID uint, ttl time.Duration) (string, error) {
	now := d.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    d.issuer,
		Audience:  jwt.ClaimStrings{d.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.NewString(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(d.secret)
}
