package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"loanhub/api/internal/models"
	"loanhub/api/internal/security"
)

const testSecret = "test-secret"

func newAuthEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/protected", Auth(testSecret), func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no claims"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"uid": claims.UserID, "email": claims.Email})
	})
	engine.PUT("/officer-only", Auth(testSecret), RequireRoles(models.UserRoleOfficer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return engine
}

func doRequest(engine *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuth_MissingToken(t *testing.T) {
	engine := newAuthEngine()

	if w := doRequest(engine, http.MethodGet, "/protected", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("no header: got %d, want 401", w.Code)
	}
	if w := doRequest(engine, http.MethodGet, "/protected", "Basic abc"); w.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme: got %d, want 401", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	engine := newAuthEngine()

	if w := doRequest(engine, http.MethodGet, "/protected", "Bearer not.a.jwt"); w.Code != http.StatusForbidden {
		t.Fatalf("garbage token: got %d, want 403", w.Code)
	}

	expired, err := security.GenerateToken(testSecret, "u1", "u1@b.in", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doRequest(engine, http.MethodGet, "/protected", "Bearer "+expired); w.Code != http.StatusForbidden {
		t.Fatalf("expired token: got %d, want 403", w.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	engine := newAuthEngine()

	tok, err := security.GenerateToken(testSecret, "u1", "u1@b.in", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	w := doRequest(engine, http.MethodGet, "/protected", "Bearer "+tok)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token: got %d, want 200, body %s", w.Code, w.Body.String())
	}
}

func TestRequireRoles(t *testing.T) {
	engine := newAuthEngine()

	userTok, err := security.GenerateToken(testSecret, "u1", "u1@b.in", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doRequest(engine, http.MethodPut, "/officer-only", "Bearer "+userTok); w.Code != http.StatusForbidden {
		t.Fatalf("user role: got %d, want 403", w.Code)
	}

	officerTok, err := security.GenerateToken(testSecret, "o1", "o1@b.in", "officer", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if w := doRequest(engine, http.MethodPut, "/officer-only", "Bearer "+officerTok); w.Code != http.StatusOK {
		t.Fatalf("officer role: got %d, want 200", w.Code)
	}
}
