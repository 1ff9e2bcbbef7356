package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestSessionSvc(duration time.Duration) SessionService {
	return NewSessionService(config.Server{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "screen-sync-test",
		TokenDuration: duration,
	}, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateSession
// ─────────────────────────────────────────────

func TestSessionService_CreateSession_Success(t *testing.T) {
	svc := newTestSessionSvc(time.Hour)

	token, err := svc.CreateSession(context.Background(), "agent-42")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)

	clientID, err := token.GetClientID()
	require.NoError(t, err)
	assert.Equal(t, "agent-42", clientID)
}

func TestSessionService_CreateSession_EmptyClientID(t *testing.T) {
	svc := newTestSessionSvc(time.Hour)

	_, err := svc.CreateSession(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_CreateSession_MissingSignKey(t *testing.T) {
	svc := NewSessionService(config.Server{
		TokenIssuer:   "screen-sync-test",
		TokenDuration: time.Hour,
	}, logger.Nop())

	_, err := svc.CreateSession(context.Background(), "agent-42")

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// ParseToken
// ─────────────────────────────────────────────

func TestSessionService_ParseToken_RoundTrip(t *testing.T) {
	svc := newTestSessionSvc(time.Hour)
	ctx := context.Background()

	issued, err := svc.CreateSession(ctx, "agent-42")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, issued.SignedString)

	require.NoError(t, err)
	assert.Equal(t, "agent-42", parsed.ClientID)
}

func TestSessionService_ParseToken_Garbage(t *testing.T) {
	svc := newTestSessionSvc(time.Hour)

	_, err := svc.ParseToken(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSessionService_ParseToken_Expired(t *testing.T) {
	// Отрицательная длительность даёт уже истёкший токен.
	svc := newTestSessionSvc(-time.Minute)
	ctx := context.Background()

	issued, err := svc.CreateSession(ctx, "agent-42")
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, issued.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSessionService_ParseToken_WrongIssuer(t *testing.T) {
	ctx := context.Background()

	other := NewSessionService(config.Server{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "somebody-else",
		TokenDuration: time.Hour,
	}, logger.Nop())
	issued, err := other.CreateSession(ctx, "agent-42")
	require.NoError(t, err)

	svc := newTestSessionSvc(time.Hour)
	_, err = svc.ParseToken(ctx, issued.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSessionService_ParseToken_WrongSignKey(t *testing.T) {
	ctx := context.Background()

	other := NewSessionService(config.Server{
		TokenSignKey:  "different-sign-key",
		TokenIssuer:   "screen-sync-test",
		TokenDuration: time.Hour,
	}, logger.Nop())
	issued, err := other.CreateSession(ctx, "agent-42")
	require.NoError(t, err)

	svc := newTestSessionSvc(time.Hour)
	_, err = svc.ParseToken(ctx, issued.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
