package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronov/authgate/internal/server/auth"
)

func gatedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", TokenGate(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString(userIDKey)})
	})
	return router
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTokenGate_ValidToken(t *testing.T) {
	router := gatedRouter(t)

	token, err := auth.GenerateToken("u-1", testSecret, time.Hour)
	require.NoError(t, err)

	w := doGet(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-1")
}

func TestTokenGate_MissingToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer "},
		{"scheme only", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gatedRouter(t)
			w := doGet(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestTokenGate_InvalidToken(t *testing.T) {
	router := gatedRouter(t)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "garbage"},
		{"wrong secret", mustToken(t, "u-1", []byte("other-secret"))},
		{"expired", mustExpiredToken(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, "Bearer "+tt.token)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestTokenGate_TamperedToken(t *testing.T) {
	router := gatedRouter(t)

	token := mustToken(t, "u-1", testSecret)
	b := []byte(token)
	i := len(b) / 2
	if b[i] == 'a' {
		b[i] = 'b'
	} else {
		b[i] = 'a'
	}

	w := doGet(router, "Bearer "+string(b))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func mustToken(t *testing.T, userID string, secret []byte) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, secret, time.Hour)
	require.NoError(t, err)
	return token
}

func mustExpiredToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken("u-1", testSecret, -time.Minute)
	require.NoError(t, err)
	return token
}
