package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"personal-trainer-app/config"
	"personal-trainer-app/internal/app/principal"
	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func serve(r *gin.Engine, method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	r := gin.New()
	r.GET("/me", AuthMiddleware(), RequireRole(actors.RoleTrainer, actors.RoleCustomer), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.GetUint(principal.ContextKey)})
	})

	w := serve(r, http.MethodGet, "/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(r, http.MethodGet, "/me", "", http.Header{"Authorization": {"Token abc"}})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	forged := signed(t, "other-secret", jwt.MapClaims{"actor_id": 7, "role": actors.RoleTrainer})
	w = serve(r, http.MethodGet, "/me", "", http.Header{"Authorization": {"Bearer " + forged}})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	expired := signed(t, "test-secret", jwt.MapClaims{"actor_id": 7, "role": actors.RoleTrainer, "exp": time.Now().Add(-time.Minute).Unix()})
	w = serve(r, http.MethodGet, "/me", "", http.Header{"Authorization": {"Bearer " + expired}})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	admin := signed(t, "test-secret", jwt.MapClaims{"actor_id": 1, "role": actors.RoleAdministrator})
	w = serve(r, http.MethodGet, "/me", "", http.Header{"Authorization": {"Bearer " + admin}})
	require.Equal(t, http.StatusForbidden, w.Code)

	ok := signed(t, "test-secret", jwt.MapClaims{"actor_id": 7, "role": actors.RoleTrainer, "exp": time.Now().Add(time.Hour).Unix()})
	w = serve(r, http.MethodGet, "/me", "", http.Header{"Authorization": {"Bearer " + ok}})
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"id":7}`, w.Body.String())
}

type memDirectory map[uint]actors.Actor

func (d memDirectory) FindActor(_ context.Context, id uint) (*actors.Actor, error) {
	a, ok := d[id]
	if !ok {
		return nil, apperr.NotFound("actor", nil)
	}
	return &a, nil
}

func TestRequireActor(t *testing.T) {
	resolver := principal.NewResolver(memDirectory{
		7: {ID: 7, Role: actors.RoleCustomer, Name: "Ana"},
		8: {ID: 8, Role: actors.RoleCustomer, IsBanned: true},
	})

	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		id, _ := c.GetQuery("as")
		switch id {
		case "7":
			c.Set(principal.ContextKey, uint(7))
		case "8":
			c.Set(principal.ContextKey, uint(8))
		}
		c.Next()
	}, RequireActor(resolver), func(c *gin.Context) {
		c.String(http.StatusOK, Actor(c).Name)
	})

	require.Equal(t, "Ana", serve(r, http.MethodGet, "/x?as=7", "", nil).Body.String())
	require.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/x?as=8", "", nil).Code)
	require.Equal(t, http.StatusForbidden, serve(r, http.MethodGet, "/x", "", nil).Code)
}

func TestSanitizeNestedStrings(t *testing.T) {
	r := gin.New()
	r.Use(SanitizeAndCleanInputMiddleware())
	r.POST("/echo", func(c *gin.Context) {
		var body map[string]interface{}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.String(http.StatusTeapot, "no body")
			return
		}
		c.JSON(http.StatusOK, body)
	})

	w := serve(r, http.MethodPost, "/echo", `{"subject":"<b>Hi</b><script>x()</script>","pictures":["<i>a.png</i>"],"priority":3}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"subject":"Hi","pictures":["a.png"],"priority":3}`, w.Body.String())

	w = serve(r, http.MethodPost, "/echo", `{"subject":`, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/echo", "", nil)
	require.Equal(t, http.StatusTeapot, w.Code)
}

func TestRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)

	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	require.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/", "", nil).Code)
	require.Equal(t, http.StatusNoContent, serve(r, http.MethodGet, "/", "", nil).Code)
	require.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/", "", nil).Code)
}

func TestRequestLogger(t *testing.T) {
	log, hook := logtest.NewNullLogger()

	r := gin.New()
	r.Use(RequestLogger(log))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/health", "", nil)
	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "/health", entry.Data["route"])
	require.Equal(t, id, entry.Data["request_id"])

	given := uuid.NewString()
	w = serve(r, http.MethodGet, "/missing", "", http.Header{RequestIDHeader: {given}})
	require.Equal(t, given, w.Header().Get(RequestIDHeader))
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	require.Equal(t, "unmatched", hook.LastEntry().Data["route"])
}
