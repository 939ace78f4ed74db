package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("user_id"),
			"email":   c.MustGet("email"),
		})
	})
	return router
}

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	validClaims := jwt.MapClaims{
		"user_id": float64(1),
		"email":   "fathan@mail.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "valid token",
			authHeader:     "Bearer " + signTestToken(t, "test-secret", validClaims),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed header",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong signing key",
			authHeader:     "Bearer " + signTestToken(t, "other-secret", validClaims),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			authHeader: "Bearer " + signTestToken(t, "test-secret", jwt.MapClaims{
				"user_id": float64(1),
				"email":   "fathan@mail.com",
				"exp":     time.Now().Add(-time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			// A well-signed token from another issuer may carry none of
			// this API's claims; it must be rejected, not panic.
			name: "valid signature without user_id claim",
			authHeader: "Bearer " + signTestToken(t, "test-secret", jwt.MapClaims{
				"sub": "someone",
				"exp": time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "valid signature without email claim",
			authHeader: "Bearer " + signTestToken(t, "test-secret", jwt.MapClaims{
				"user_id": float64(1),
				"exp":     time.Now().Add(time.Hour).Unix(),
			}),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	router := authTestRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = bearerToken("bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	for _, header := range []string{"", "abc", "Bearer", "Basic dXNlcg=="} {
		_, err := bearerToken(header)
		assert.Error(t, err, "header %q", header)
	}
}
