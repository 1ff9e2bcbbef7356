package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// openSession
// ─────────────────────────────────────────────

func TestOpenSession_IssuesBearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newHandlerWithMocks(t, ctrl)

	token, err := utils.GenerateJWTToken("screen-sync-test", "agent-1", time.Hour, "test-sign-key")
	require.NoError(t, err)

	m.sessions.EXPECT().CreateSession(gomock.Any(), "agent-1").Return(token, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"client_id":"agent-1"}`))
	rec := httptest.NewRecorder()

	h.openSession(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+token.SignedString, rec.Header().Get("Authorization"))

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, token.SignedString, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)
}

func TestOpenSession_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, _ := newHandlerWithMocks(t, ctrl)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	h.openSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenSession_EmptyClientID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newHandlerWithMocks(t, ctrl)

	m.sessions.EXPECT().CreateSession(gomock.Any(), "").
		Return(models.Token{}, service.ErrInvalidDataProvided)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.openSession(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid data provided")
	assert.Empty(t, rec.Header().Get("Authorization"))
}

func TestOpenSession_TokenCreationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newHandlerWithMocks(t, ctrl)

	m.sessions.EXPECT().CreateSession(gomock.Any(), "agent-1").
		Return(models.Token{}, errors.New("hmac misconfigured"))

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"client_id":"agent-1"}`))
	rec := httptest.NewRecorder()

	h.openSession(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOpenSession_ViaRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	h, m := newHandlerWithMocks(t, ctrl)

	token, err := utils.GenerateJWTToken("screen-sync-test", "agent-7", time.Hour, "test-sign-key")
	require.NoError(t, err)

	m.sessions.EXPECT().CreateSession(gomock.Any(), "agent-7").Return(token, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/session", strings.NewReader(`{"client_id":"agent-7"}`))
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+token.SignedString, rec.Header().Get("Authorization"))
}
