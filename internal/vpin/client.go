package vpin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"pincab/internal/domain"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "pincab/1.0"
)

// statusError carries a non-2xx backend status so callers can map specific
// codes onto domain sentinels without parsing the message.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.code, http.StatusText(e.code))
}

// notFound substitutes sentinel when err is a backend 404. Other errors pass
// through unchanged.
func notFound(err, sentinel error) error {
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusNotFound {
		return sentinel
	}
	return err
}

// errUnreadableBody marks a success response whose body could not be read in
// full. Text endpoints tolerate it; JSON endpoints surface it.
var errUnreadableBody = errors.New("unreadable response body")

// Client implements domain.GameRepository, domain.MediaRepository,
// domain.ControlRepository, and domain.InfoRepository against a VPin Studio
// backend. It carries no logic beyond URL construction and response decoding.
type Client struct {
	mu         sync.RWMutex
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client for the given base address. The address
// is trimmed and stripped of trailing slashes before paths are joined to it.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// BaseURL returns the normalized base address.
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL repoints the client at a different backend. Requests already in
// flight finish against the old address.
func (c *Client) SetBaseURL(baseURL string) {
	c.mu.Lock()
	c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	c.mu.Unlock()
}

// doRequest performs one HTTP round trip and returns the raw body. A network
// failure maps to domain.ErrServerOffline; a non-2xx status maps to an error
// carrying "HTTP <code> <reason>".
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	reqURL := c.BaseURL() + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("backend request", "method", method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", "error", err)
		return nil, domain.ErrServerOffline
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("backend request error", "status", resp.StatusCode, "url", reqURL)
		return nil, &statusError{code: resp.StatusCode}
	}
	if readErr != nil {
		return nil, fmt.Errorf("%w: %v", errUnreadableBody, readErr)
	}

	return respBody, nil
}

// getJSON fetches a path and decodes the JSON body into dest.
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		c.logger.Error("JSON parse error", "error", err, "path", path, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// getText fetches a path expected to return opaque text. An unreadable body
// is tolerated as an empty string once the status was success.
func (c *Client) getText(ctx context.Context, method, path string, body []byte) (string, error) {
	respBody, err := c.doRequest(ctx, method, path, body)
	if err != nil {
		if errors.Is(err, errUnreadableBody) {
			return "", nil
		}
		return "", err
	}
	return string(respBody), nil
}

// === Games ===

// GetEmulators lists the backend's configured emulators
func (c *Client) GetEmulators(ctx context.Context) ([]domain.Emulator, error) {
	var dtos []emulatorDTO
	if err := c.getJSON(ctx, "/emulators", &dtos); err != nil {
		return nil, notFound(err, domain.ErrEmulatorNotFound)
	}
	return MapEmulators(dtos), nil
}

// GetTables lists the known tables for one emulator
func (c *Client) GetTables(ctx context.Context, emulatorID int) ([]domain.Table, error) {
	path := fmt.Sprintf("/games/knowns/%d", emulatorID)
	var dtos []tableDTO
	if err := c.getJSON(ctx, path, &dtos); err != nil {
		return nil, notFound(err, domain.ErrEmulatorNotFound)
	}
	return MapTables(dtos), nil
}

// GetTableDetails fetches the expanded record for one table
func (c *Client) GetTableDetails(ctx context.Context, gameID string) (*domain.TableDetails, error) {
	path := "/frontend/tabledetails/" + url.PathEscape(gameID)
	var dto detailsDTO
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, notFound(err, domain.ErrGameNotFound)
	}
	return MapDetails(dto), nil
}

// GetHighscores fetches the free-text scoreboard dump for one table
func (c *Client) GetHighscores(ctx context.Context, gameID string) (*domain.Highscores, error) {
	path := "/games/scores/" + url.PathEscape(gameID)
	var dto scoresDTO
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, notFound(err, domain.ErrGameNotFound)
	}
	return &domain.Highscores{Raw: dto.Raw}, nil
}

// === Media ===

// GetMediaIndex lists the media candidates available for one table
func (c *Client) GetMediaIndex(ctx context.Context, gameID string) (*domain.MediaIndex, error) {
	path := "/media/" + url.PathEscape(gameID)
	var dto mediaIndexDTO
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return nil, notFound(err, domain.ErrGameNotFound)
	}
	return MapMediaIndex(dto), nil
}

// MediaURL builds the asset URL for one media candidate
func (c *Client) MediaURL(gameID int, category, name string) string {
	return fmt.Sprintf("%s/media/%d/%s/%s",
		c.BaseURL(), gameID, url.PathEscape(category), url.PathEscape(name))
}

// GetMediaAsset fetches raw image bytes for one media candidate
func (c *Client) GetMediaAsset(ctx context.Context, gameID int, category, name string) ([]byte, error) {
	path := fmt.Sprintf("/media/%d/%s/%s", gameID, url.PathEscape(category), url.PathEscape(name))
	return c.doRequest(ctx, http.MethodGet, path, nil)
}

// === Control ===

// PlayTable launches a table directly through the emulator. opts may be nil,
// which sends the empty JSON object the backend expects.
func (c *Client) PlayTable(ctx context.Context, gameID string, opts *domain.LaunchOptions) (string, error) {
	payload := playDTO{}
	if opts != nil {
		payload.AltExe = opts.AltExe
		payload.Option = opts.Option
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode launch options: %w", err)
	}
	path := "/games/play/" + url.PathEscape(gameID)
	return c.getText(ctx, http.MethodPut, path, body)
}

// LaunchViaFrontend launches a table through the cabinet frontend
func (c *Client) LaunchViaFrontend(ctx context.Context, gameID string) (string, error) {
	path := "/frontend/launch/" + url.PathEscape(gameID)
	return c.getText(ctx, http.MethodGet, path, nil)
}

// RestartFrontend restarts the cabinet frontend process
func (c *Client) RestartFrontend(ctx context.Context) (string, error) {
	return c.getText(ctx, http.MethodGet, "/frontend/restart", nil)
}

// SetMute toggles the cabinet's system mute state
func (c *Client) SetMute(ctx context.Context, muted bool) (string, error) {
	flag := 0
	if muted {
		flag = 1
	}
	return c.getText(ctx, http.MethodGet, "/system/mute/"+strconv.Itoa(flag), nil)
}

// ListHooks lists the named automation hooks the backend exposes
func (c *Client) ListHooks(ctx context.Context) ([]string, error) {
	var dto hooksDTO
	if err := c.getJSON(ctx, "/hooks", &dto); err != nil {
		return nil, err
	}
	return dto.Hooks, nil
}

// RunHook executes a named hook, optionally scoped to a game id (0 = none)
func (c *Client) RunHook(ctx context.Context, name string, gameID int) (string, error) {
	payload := hookRunDTO{Name: name, Commands: []string{}, GameID: gameID}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode hook request: %w", err)
	}
	return c.getText(ctx, http.MethodPost, "/hooks", body)
}

// === Info ===

// GetSystemInfo fetches the backend's name and version
func (c *Client) GetSystemInfo(ctx context.Context) (*domain.SystemInfo, error) {
	var dto systemDTO
	if err := c.getJSON(ctx, "/system", &dto); err != nil {
		return nil, err
	}
	return &domain.SystemInfo{SystemName: dto.SystemName, Version: dto.Version}, nil
}

// GetFrontendInfo fetches the cabinet frontend's identity
func (c *Client) GetFrontendInfo(ctx context.Context) (*domain.FrontendInfo, error) {
	var dto frontendDTO
	if err := c.getJSON(ctx, "/frontend", &dto); err != nil {
		return nil, err
	}
	return &domain.FrontendInfo{Name: dto.Name, FrontendType: dto.FrontendType}, nil
}

// GetAvatar fetches the cabinet's avatar image bytes
func (c *Client) GetAvatar(ctx context.Context) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, "/assets/avatar", nil)
}
