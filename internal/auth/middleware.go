package auth

import (
	"net/http"
	"strings"

	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const claimsKey = "auth_claims"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("organization_id", claims.OrganizationID.String())
		c.Set("role", string(claims.Role))
		c.Set(claimsKey, claims)

		ctx := logger.NewContext(c.Request.Context(), logger.UserKey, claims.UserID)
		ctx = logger.NewContext(ctx, logger.OrganizationKey, claims.OrganizationID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireOrganization rejects tokens scoped to another organization than
// the one in the path parameter param.
func (m *AuthMiddleware) RequireOrganization(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingClaims.Error()})
			c.Abort()
			return
		}

		if !strings.EqualFold(c.Param(param), claims.OrganizationID.String()) {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrOrganizationMismatch.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole validates that the token carries one of the allowed roles
func (m *AuthMiddleware) RequireRole(allowed ...Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetAuthClaims(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !claims.HasRole(allowed...) {
			c.JSON(http.StatusForbidden, gin.H{"error": apperrors.ErrInsufficientRole.Error()})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
