package http

import (
	"testing"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/mock"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// handlerMocks bundles the gomock service doubles behind a Handler under test.
type handlerMocks struct {
	screens  *mock.MockScreenService
	sessions *mock.MockSessionService
	info     *mock.MockAppInfoService
	feed     *ws.Hub
}

// newHandlerWithMocks builds a Handler whose services are gomock doubles and
// whose change feed is a fresh hub. The hub is not running; tests that need
// frame delivery start it themselves.
func newHandlerWithMocks(t *testing.T, ctrl *gomock.Controller) (*Handler, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		screens:  mock.NewMockScreenService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
		feed:     ws.NewHub(logger.Nop()),
	}

	services := &service.Services{
		ScreenService:  m.screens,
		SessionService: m.sessions,
		AppInfoService: m.info,
	}

	return NewHandler(services, m.feed, logger.Nop()), m
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, ws.NewHub(logger.Nop()), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	feed := ws.NewHub(logger.Nop())
	log := logger.Nop()

	h := NewHandler(svc, feed, log)

	assert.Equal(t, svc, h.services)
	assert.Same(t, feed, h.feed)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, ws.NewHub(logger.Nop()), logger.Nop())
	h2 := NewHandler(&service.Services{}, ws.NewHub(logger.Nop()), logger.Nop())

	assert.NotSame(t, h1, h2)
}
