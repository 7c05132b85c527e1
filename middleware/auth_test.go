package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmacy-api/config"
	"pharmacy-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.Use(&config.AppConfig{JWTSecret: "test-secret", JWTExpiry: time.Hour})
	r := gin.New()
	r.GET("/me", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": GetUserID(c), "role": GetRole(c)})
	})
	r.GET("/admin", AuthRequired(), RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func get(r *gin.Engine, path, token string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRequired(t *testing.T) {
	r := newEngine()
	token, err := GenerateToken(&models.User{ID: 7, Email: "a@b.co", Role: models.RoleUser})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if code := get(r, "/me", ""); code != http.StatusUnauthorized {
		t.Errorf("expected 401 without header, got %d", code)
	}
	if code := get(r, "/me", token+"x"); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for tampered token, got %d", code)
	}
	if code := get(r, "/me", token); code != http.StatusOK {
		t.Errorf("expected 200, got %d", code)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	r := newEngine()
	claims := Claims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JWTSecret)
	if err != nil {
		t.Fatal(err)
	}
	if code := get(r, "/admin", token); code != http.StatusUnauthorized {
		t.Errorf("expected 401 for expired token, got %d", code)
	}
}

func TestRoleRequired(t *testing.T) {
	r := newEngine()
	user, _ := GenerateToken(&models.User{ID: 2, Role: models.RoleUser})
	admin, _ := GenerateToken(&models.User{ID: 1, Role: models.RoleAdmin})

	if code := get(r, "/admin", user); code != http.StatusForbidden {
		t.Errorf("expected 403 for user, got %d", code)
	}
	if code := get(r, "/admin", admin); code != http.StatusNoContent {
		t.Errorf("expected 204 for admin, got %d", code)
	}
}
