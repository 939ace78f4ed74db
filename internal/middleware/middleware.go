package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func unauthorized(c *gin.Context, message, detail string) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": message,
		"error":   detail,
	})
	c.Abort()
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization token")
	}
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("use format: Bearer {token}")
	}
	return parts[1], nil
}

// AuthMiddleware validates the bearer token and stores the caller's
// user_id and email in the gin context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil {
			unauthorized(c, "Authorization header is required", err.Error())
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(os.Getenv("JWT_SECRET_KEY")), nil
		})
		if err != nil || !token.Valid {
			detail := "token validation failed"
			if err != nil {
				detail = err.Error()
			}
			unauthorized(c, "Invalid or expired token", detail)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "Invalid token claims", "unexpected claims format")
			return
		}

		// A validly signed token can still lack the claims this API issues.
		userID, ok := claims["user_id"].(float64)
		if !ok {
			unauthorized(c, "Invalid token claims", "user_id claim is missing")
			return
		}
		email, ok := claims["email"].(string)
		if !ok {
			unauthorized(c, "Invalid token claims", "email claim is missing")
			return
		}

		c.Set("user_id", uint(userID))
		c.Set("email", email)
		c.Next()
	}
}
