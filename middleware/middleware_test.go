package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSecurityHeaders(t *testing.T) {
	router := gin.New()
	router.Use(SecurityHeaders())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "1; mode=block", w.Header().Get("X-XSS-Protection"))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}

func TestSanitizeBodyStripsMarkupBeforeHandler(t *testing.T) {
	var seen map[string]any

	router := gin.New()
	router.POST("/", SanitizeBody(), func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &seen))
		c.Status(http.StatusOK)
	})

	payload := `{"name":"<script>alert(1)</script>Remera","stock":5,"sizes":["<b>M</b>","L"]}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Remera", seen["name"])
	assert.Equal(t, float64(5), seen["stock"])
	assert.Equal(t, []any{"M", "L"}, seen["sizes"])
}

func TestSanitizeBodyPassesMalformedJSONThrough(t *testing.T) {
	var raw []byte

	router := gin.New()
	router.POST("/", SanitizeBody(), func(c *gin.Context) {
		raw, _ = io.ReadAll(c.Request.Body)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// the binder downstream is the one that rejects it
	assert.Equal(t, "{not json", string(raw))
}

func TestRateLimitRejectsSixthAttempt(t *testing.T) {
	router := gin.New()
	router.POST("/login", RateLimit(services.NewLoginLimiter(nil)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		assert.Equal(t, http.StatusOK, w.Code, "attempt %d", i+1)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many login attempts")
}

func TestRequireAuth(t *testing.T) {
	sessions := services.NewSessionStore(nil)
	sessionID, err := sessions.Create(t.Context(), "admin-1", "maria")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", RequireAuth(sessions), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetString("admin_id"), "username": c.GetString("username")})
	})

	// no cookie
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// bogus session id
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// valid session
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionID})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":"admin-1"`)
	assert.Contains(t, w.Body.String(), `"username":"maria"`)
}
