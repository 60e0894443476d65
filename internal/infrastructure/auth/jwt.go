// Package auth verifies the role tokens issued by the surrounding
// application's identity service.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flyoffice/directory/internal/shared/biztime"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the caller's staff id in sub and its role. Role stays an
// opaque string here; the permission resolver decides what it grants.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Subject returns the staff id, empty when the claim is absent.
func (c *Claims) Subject() string {
	return c.RegisteredClaims.Subject
}

type JWTService struct {
	secret []byte
	issuer string
}

// NewJWTService shares secret with the identity service. A non-empty issuer is
// enforced on Verify and stamped on Generate.
func NewJWTService(secret, issuer string) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Generate signs an HS256 role token. The directory never logs anyone in; this
// exists for the dev token command and tests.
func (s *JWTService) Generate(subject, role string, ttl time.Duration) (string, error) {
	now := biztime.NowUTC()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
