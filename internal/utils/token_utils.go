package utils

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AbdulmosenAlmuzaini/malek/internal/core/domain"
)

// SessionClaims are the claims carried by a session token. The role
// and display name ride inside the token so no per-request user lookup
// is needed; revocation is only by expiry or secret rotation.
type SessionClaims struct {
	Role domain.Role `json:"role"`
	Name string      `json:"name"`
	jwt.RegisteredClaims
}

// IssueSessionToken produces a signed token embedding the user's id,
// role and display name, valid for expiryDuration from now.
func IssueSessionToken(user *domain.User, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		Role: user.Role,
		Name: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken parses a session token, validates its signature
// and expiry, and returns the decoded identity. The error reports
// expired vs malformed for logging; callers must treat both as
// unauthenticated.
func VerifySessionToken(tokenString string, secret string) (*domain.Identity, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	return &domain.Identity{
		UserID: userID,
		Role:   claims.Role,
		Name:   claims.Name,
	}, nil
}
