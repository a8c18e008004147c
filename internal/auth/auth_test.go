package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cargodeploy-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuthService(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		_, err := NewAuthService("", time.Hour)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("default ttl", func(t *testing.T) {
		svc, err := NewAuthService("secret", 0)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.ttl)
	})
}

func TestJWTOperations(t *testing.T) {
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)

	token, err := svc.GenerateJWT("gh|42", "dev@example.com", "Dev")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "gh|42", claims.Subject)
	assert.Equal(t, "dev@example.com", claims.Email)
	assert.Equal(t, "Dev", claims.Name)
	assert.Equal(t, "cargodeploy-backend", claims.Issuer)

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := NewAuthService("another-key", time.Hour)
		_, err := other.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("empty subject rejected at generation", func(t *testing.T) {
		_, err := svc.GenerateJWT("", "dev@example.com", "")
		assert.Error(t, err)
	})
}

func TestJWTExpiration(t *testing.T) {
	svc, err := NewAuthService("test-signing-key", time.Minute)
	require.NoError(t, err)
	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateJWT("gh|42", "", "")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateJWT(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateJWT_RejectsNoneAlgorithm(t *testing.T) {
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "gh|42", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateJWT(token)
	assert.Error(t, err)
}

func newTestRouter(svc *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", NewAuthMiddleware(svc).RequireAuth(), func(c *gin.Context) {
		id, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		ctxUser, _ := logger.UserFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": id, "email": email, "ctx_user": ctxUser})
	})
	router.POST("/callback", RequireAPIKey("s3cret"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	svc, err := NewAuthService("test-signing-key", time.Hour)
	require.NoError(t, err)
	router := newTestRouter(svc)
	token, err := svc.GenerateJWT("gh|42", "dev@example.com", "")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			if tc.status == http.StatusOK {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "gh|42", body["user_id"])
				assert.Equal(t, "dev@example.com", body["email"])
				assert.Equal(t, "gh|42", body["ctx_user"])
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	svc, _ := NewAuthService("test-signing-key", time.Hour)
	router := newTestRouter(svc)

	testCases := []struct {
		name   string
		key    string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", "nope", http.StatusUnauthorized},
		{"correct", "s3cret", http.StatusNoContent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/callback", nil)
			if tc.key != "" {
				req.Header.Set(APIKeyHeader, tc.key)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRequireAPIKey_EmptyConfiguredKeyRejectsAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/callback", RequireAPIKey(""), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodPost, "/callback", nil)
	req.Header.Set(APIKeyHeader, "anything")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
