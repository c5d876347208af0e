package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"consultly/config"
	"consultly/models"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", AuthMiddleware(), func(c *gin.Context) {
		id, role := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})
	r.GET("/admin", AuthMiddleware(), RequireRole(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func request(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthMiddleware(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := authRouter()

	t.Run("accepts an issued token and exposes the caller identity", func(t *testing.T) {
		token, err := utils.GenerateToken("seek-1", models.RoleSeeker, time.Hour)
		require.NoError(t, err)

		rec := request(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"seek-1","role":"seeker"}`, rec.Body.String())
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := utils.GenerateToken("seek-1", models.RoleSeeker, -time.Minute)
		require.NoError(t, err)

		rec := request(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateToken("seek-1", models.RoleSeeker, time.Hour)
		require.NoError(t, err)

		config.AppConfig.JWTSecret = "rotated-secret"
		defer func() { config.AppConfig.JWTSecret = "test-secret" }()

		rec := request(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an unknown role claim", func(t *testing.T) {
		token, err := utils.GenerateToken("x-1", "superuser", time.Hour)
		require.NoError(t, err)

		rec := request(r, "/whoami", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects missing or malformed headers", func(t *testing.T) {
		for _, header := range []string{"", "Basic abc", "Bearer not-a-token"} {
			rec := request(r, "/whoami", header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		}
	})
}

func TestRequireRole(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := authRouter()

	adminToken, err := utils.GenerateToken("admin-1", models.RoleAdmin, time.Hour)
	require.NoError(t, err)
	seekerToken, err := utils.GenerateToken("seek-1", models.RoleSeeker, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, request(r, "/admin", "Bearer "+adminToken).Code)
	assert.Equal(t, http.StatusForbidden, request(r, "/admin", "Bearer "+seekerToken).Code)
}
