package middleware

import (
	"strings"

	"product-reviews/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sellerIDKey = "seller_id"

type AuthMiddleware struct {
	jwt *jwt.Service
}

func NewAuthMiddleware(jwtSvc *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// OptionalAuth resolves the requesting seller when a valid token is
// present and lets anonymous requests through untouched. The read paths
// need the identity only to decide whether hidden reviews are visible.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if claims, err := m.jwt.ValidateToken(token); err == nil {
				c.Set(sellerIDKey, claims.SellerID)
			}
		}
		c.Next()
	}
}

// GetSellerID returns the authenticated seller, or nil for anonymous
// requests.
func GetSellerID(c *gin.Context) *uuid.UUID {
	v, exists := c.Get(sellerIDKey)
	if !exists {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
