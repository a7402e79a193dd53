package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"personal-trainer-app/internal/app/http/middleware"
	"personal-trainer-app/internal/app/messaging"
	"personal-trainer-app/internal/apperr"
	"personal-trainer-app/internal/domain/actors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakeBroadcaster struct {
	kind  string
	draft messaging.Draft
}

func (f *fakeBroadcaster) Broadcast(_ context.Context, _ actors.Actor, d messaging.Draft) (int, error) {
	f.kind, f.draft = "broadcast", d
	return 4, nil
}

func (f *fakeBroadcaster) Breach(_ context.Context, _ actors.Actor, d messaging.Draft) (int, error) {
	if d.Subject == "" {
		return 0, apperr.Validation(apperr.ReasonMissingField, "subject and body are required")
	}
	f.kind, f.draft = "breach", d
	return 5, nil
}

func post(t *testing.T, fb *fakeBroadcaster, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := NewHandler(fb)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		middleware.SetActor(c, actors.Actor{ID: 1, Role: actors.RoleAdministrator})
		c.Next()
	})
	r.POST("/admin/messages/broadcast", h.Broadcast)
	r.POST("/admin/messages/breach", h.Breach)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBroadcastReportsRecipients(t *testing.T) {
	fb := &fakeBroadcaster{}
	w := post(t, fb, "/admin/messages/broadcast", `{"subject":"Maintenance","body":"Sunday 02:00","priority":"LOW"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.JSONEq(t, `{"recipients":4}`, w.Body.String())
	require.Equal(t, "broadcast", fb.kind)
	require.Equal(t, "Maintenance", fb.draft.Subject)
}

func TestBreach(t *testing.T) {
	fb := &fakeBroadcaster{}
	w := post(t, fb, "/admin/messages/breach", `{"subject":"Incident","body":"Rotate your password"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "breach", fb.kind)

	w = post(t, fb, "/admin/messages/breach", `{"body":"no subject"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), apperr.ReasonMissingField)
}
