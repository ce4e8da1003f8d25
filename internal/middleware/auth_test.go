package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IpitingaJA/church_event_app/internal/middleware"
	"github.com/IpitingaJA/church_event_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// newAuthRouter builds a router with the auth middleware and a probe route
// that records whether it ran and what identity it saw.
func newAuthRouter(reached *bool, seenUserID *string, seenCargo *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		*reached = true
		if userID, ok := middleware.GetUserIDFromContext(c); ok {
			*seenUserID = userID
		}
		if cargo, ok := middleware.GetUserRoleFromContext(c); ok {
			*seenCargo = cargo
		}
		c.Status(http.StatusOK)
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	token, err := utils.GenerateJWT("user-42", "diretor jovem", testSecret, time.Hour, "church-event-app")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, reached)
	assert.Equal(t, "user-42", seenUserID)
	assert.Equal(t, "diretor jovem", seenCargo)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	w := doRequest(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "Token não fornecido")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	w := doRequest(r, "Basic abc123")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.Contains(t, w.Body.String(), "Token mal formatado")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	claims := jwt.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.Contains(t, w.Body.String(), "Token expirado")
}

func TestAuthMiddleware_InvalidSignature(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	token, err := utils.GenerateJWT("user-42", "ancião", "other-secret", time.Hour, "church-event-app")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
	assert.Contains(t, w.Body.String(), "Token inválido")
}

func TestAuthMiddleware_TokenWithoutSubject(t *testing.T) {
	var reached bool
	var seenUserID, seenCargo string
	r := newAuthRouter(&reached, &seenUserID, &seenCargo)

	token, err := utils.GenerateJWT("", "ancião", testSecret, time.Hour, "church-event-app")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached)
}
