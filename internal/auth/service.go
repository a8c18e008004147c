package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "cargodeploy-backend"

// AuthService issues and validates the bearer tokens carried by dashboard requests
type AuthService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// AuthClaims represents the JWT claims of an authenticated user.
// Subject is the user's external id.
type AuthClaims struct {
	Email                string `json:"email"`
	Name                 string `json:"name,omitempty"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string, ttl time.Duration) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(externalID, email, name string) (string, error) {
	if externalID == "" {
		return "", errors.New("subject is required")
	}
	now := s.now()
	claims := &AuthClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   externalID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, errors.New("token has no subject")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
