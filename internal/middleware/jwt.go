package middleware

import (
	"net/http"
	"strings"

	"jobflow/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxClaims = "auth_claims"
)

// JWTAuth validates the bearer token issued by the external auth provider and
// places the identity claims into the request context. The core performs no
// authentication beyond this; ownership checks happen at the handler layer.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CtxUserID, sub)
		c.Set(CtxClaims, model.AuthClaims{
			Sub:             sub,
			Email:           strClaim(claims, "email"),
			FirstName:       strClaim(claims, "first_name"),
			LastName:        strClaim(claims, "last_name"),
			ProfileImageURL: strClaim(claims, "profile_image_url"),
		})

		c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	v, _ := claims[key].(string)
	return v
}
