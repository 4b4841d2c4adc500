package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrRegistry = errx.NewRegistry("AUTH")

var (
	CodeMissingToken      = ErrRegistry.Register("MISSING_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Missing authorization header")
	CodeInvalidToken      = ErrRegistry.Register("INVALID_TOKEN", errx.TypeAuthorization, http.StatusUnauthorized, "Invalid or expired token")
	CodeInsufficientScope = ErrRegistry.Register("INSUFFICIENT_SCOPE", errx.TypeAuthorization, http.StatusForbidden, "Insufficient permissions")
	CodeUnknownScope      = ErrRegistry.Register("UNKNOWN_SCOPE", errx.TypeValidation, http.StatusBadRequest, "Unknown scope")
)

func ErrMissingToken() *errx.Error {
	return ErrRegistry.New(CodeMissingToken)
}

func ErrInvalidToken() *errx.Error {
	return ErrRegistry.New(CodeInvalidToken)
}

func ErrInsufficientScope() *errx.Error {
	return ErrRegistry.New(CodeInsufficientScope)
}

// TokenClaims are the claims carried by an API token
type TokenClaims struct {
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// HasScope checks the token against a required scope
func (c *TokenClaims) HasScope(required string) bool {
	for _, s := range c.Scopes {
		if Grants(s, required) {
			return true
		}
	}
	return false
}

// HasAnyScope checks if the token grants any of the required scopes
func (c *TokenClaims) HasAnyScope(required ...string) bool {
	for _, r := range required {
		if c.HasScope(r) {
			return true
		}
	}
	return false
}

// TokenService issues and validates HS256 API tokens
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a token service. The secret must not be empty.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errx.New("jwt secret is required", errx.TypeConfiguration)
	}
	if ttl <= 0 {
		return nil, errx.New("token ttl must be positive", errx.TypeConfiguration)
	}
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue signs a token for subject carrying scopes
func (s *TokenService) Issue(subject string, scopes []string) (string, error) {
	for _, scope := range scopes {
		if !IsKnownScope(scope) {
			return "", ErrRegistry.New(CodeUnknownScope).WithDetail("scope", scope)
		}
	}

	now := s.now()
	claims := TokenClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "sign token", errx.TypeInternal)
	}
	return signed, nil
}

// Validate parses and verifies a token
func (s *TokenService) Validate(tokenString string) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken().WithCause(errors.New("token string is empty"))
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken()
	}
	return claims, nil
}
