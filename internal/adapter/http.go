package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiryMargin is how long before the real expiry a session token is
// already treated as expired, so a fresh session is opened before the old one
// dies mid-pass.
const tokenExpiryMargin = 30 * time.Second

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from agentCfg.ServerAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if agentCfg.ServerAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(agentCfg config.ClientAgent, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(agentCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(agentCfg.RequestTimeout)

	return &httpServerAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// IsTokenExpired implements [ServerAdapter]. The token is inspected without
// signature verification; only the server checks authenticity, the agent only
// needs to know when to ask for a new one.
func (h *httpServerAdapter) IsTokenExpired() bool {
	token := h.Token()
	if token == "" {
		return true
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return time.Until(claims.ExpiresAt.Time) < tokenExpiryMargin
}

// OpenSession implements [ServerAdapter]. It POSTs the client id to
// POST /api/session. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) OpenSession(ctx context.Context, clientID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SessionRequest{ClientID: clientID}).
		Post("/api/session")
	if err != nil {
		return fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("session parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// PushScreen implements [ServerAdapter]. It POSTs the mutation to
// POST /api/screens/push and decodes the acknowledgement. Returns
// [ErrVersionConflict] (wrapped, with the server copy when it decodes) on
// HTTP 409. Requires a valid bearer token.
func (h *httpServerAdapter) PushScreen(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/screens/push")
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var ack models.PushResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	return ack, nil
}

// PullScreens implements [ServerAdapter]. It GETs the full screen set from
// GET /api/screens, optionally including tombstoned screens so remote
// deletions can be propagated locally. Requires a valid bearer token.
func (h *httpServerAdapter) PullScreens(ctx context.Context, includeDeleted bool) ([]models.Screen, error) {
	req := h.authedRequest(ctx)
	if includeDeleted {
		req.SetQueryParam("include_deleted", "true")
	}

	resp, err := req.Get("/api/screens")
	if err != nil {
		return nil, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeScreenList(resp.Body())
}

// GetScreen implements [ServerAdapter]. It GETs a single screen from
// GET /api/screens/{id}. Returns [ErrNotFound] (wrapped) on HTTP 404.
// Requires a valid bearer token.
func (h *httpServerAdapter) GetScreen(ctx context.Context, screenID string) (models.Screen, error) {
	resp, err := h.authedRequest(ctx).Get("/api/screens/" + url.PathEscape(screenID))
	if err != nil {
		return models.Screen{}, fmt.Errorf("get screen request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Screen{}, err
	}

	var screen models.Screen
	if err = json.Unmarshal(resp.Body(), &screen); err != nil {
		return models.Screen{}, fmt.Errorf("decode screen response: %w", err)
	}

	return screen, nil
}

// ListScreens implements [ServerAdapter]. It GETs one recency-ordered page
// from GET /api/screens. Requires a valid bearer token.
func (h *httpServerAdapter) ListScreens(ctx context.Context, limit, offset int) ([]models.Screen, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit)).
			SetQueryParam("offset", strconv.Itoa(offset))
	}

	resp, err := req.Get("/api/screens")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeScreenList(resp.Body())
}

// SearchScreens implements [ServerAdapter]. It GETs name matches from
// GET /api/screens/search. Requires a valid bearer token.
func (h *httpServerAdapter) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		Get("/api/screens/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeScreenList(resp.Body())
}

// CountScreens implements [ServerAdapter]. It GETs the live screen count from
// GET /api/screens/count. Requires a valid bearer token.
func (h *httpServerAdapter) CountScreens(ctx context.Context) (int64, error) {
	resp, err := h.authedRequest(ctx).Get("/api/screens/count")
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var cr models.ScreenCountResponse
	if err = json.Unmarshal(resp.Body(), &cr); err != nil {
		return 0, fmt.Errorf("decode count response: %w", err)
	}

	return cr.Count, nil
}

// GetBuildInfo implements [ServerAdapter]. It GETs the server build metadata
// from GET /api/version. The endpoint is unauthenticated so the agent can use
// it as a cheap connectivity probe.
func (h *httpServerAdapter) GetBuildInfo(ctx context.Context) (models.BuildInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	var info models.BuildInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.BuildInfo{}, fmt.Errorf("decode version response: %w", err)
	}

	return info, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func decodeScreenList(body []byte) ([]models.Screen, error) {
	var list models.ScreenListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("decode screen list response: %w", err)
	}

	return list.Screens, nil
}
