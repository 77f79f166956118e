package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxiang/Mini-Amazon/middleware"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.ValidateToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func TestValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "testsecret")
	r := newAuthRouter()

	get := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get("").Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok := signToken(t, "othersecret", jwt.MapClaims{"user_id": 7})
		assert.Equal(t, http.StatusUnauthorized, get(tok).Code)
	})

	t.Run("missing user_id claim", func(t *testing.T) {
		tok := signToken(t, "testsecret", jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
		assert.Equal(t, http.StatusUnauthorized, get(tok).Code)
	})

	t.Run("expired", func(t *testing.T) {
		tok := signToken(t, "testsecret", jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})
		assert.Equal(t, http.StatusUnauthorized, get(tok).Code)
	})

	t.Run("valid", func(t *testing.T) {
		tok := signToken(t, "testsecret", jwt.MapClaims{
			"user_id": 7,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		w := get(tok)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id": 7}`, w.Body.String())
	})

	t.Run("bearer prefix accepted", func(t *testing.T) {
		tok := signToken(t, "testsecret", jwt.MapClaims{"user_id": 7})
		assert.Equal(t, http.StatusOK, get("Bearer "+tok).Code)
	})
}
