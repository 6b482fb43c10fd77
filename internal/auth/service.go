package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role is the user's role inside the organization named by the token
type Role string

const (
	RoleMember Role = "member"
	RoleLeader Role = "leader"
	RoleAdmin  Role = "admin"
)

const tokenIssuer = "growth-roadmap-backend"

// AuthClaims are the claims issued by the external auth platform
type AuthClaims struct {
	UserID         string    `json:"user_id" example:"user_2abc"`
	OrganizationID uuid.UUID `json:"organization_id" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	Role           Role      `json:"role" example:"leader"`
	Email          string    `json:"email,omitempty" example:"jane@example.com"`
	// Standard JWT fields
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// HasRole reports whether the claims carry one of roles
func (c *AuthClaims) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}

// AuthService verifies HS256 tokens signed with the shared platform secret
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret), ttl: time.Hour}, nil
}

// GenerateJWT signs claims for the given identity. The server only verifies
// tokens; this is used by the seed tooling and tests.
func (s *AuthService) GenerateJWT(userID string, orgID uuid.UUID, role Role) (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		UserID:         userID,
		OrganizationID: orgID,
		Role:           role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateJWT parses and verifies tokenString
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no user")
	}
	return claims, nil
}
