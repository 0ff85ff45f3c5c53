package gcapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"

	"github.com/geotrail/logtemplate/connector"
	"github.com/geotrail/logtemplate/observe"
)

const (
	sessionPath = "/v1/session"
	profilePath = "/v1/profile"

	defaultHTTPTimeout = 30 * time.Second

	// Fallback session lifetime when the token carries no exp claim.
	defaultSessionTTL = 30 * time.Minute
)

// Config configures a Client.
type Config struct {
	// BaseURL is the platform API root, e.g. "https://api.example.com".
	BaseURL string

	// Username and Password are the account credentials.
	Username string
	Password string

	// GeocodePrefix is the geocode prefix this connector claims.
	// Default: "GC"
	GeocodePrefix string

	// HTTPClient is the HTTP client for requests. If nil, a default
	// client with a 30s timeout is used.
	HTTPClient *http.Client

	// Retry configures backoff for session and profile requests.
	Retry RetryConfig

	// Logger receives structured diagnostics. Defaults to a no-op logger.
	Logger observe.Logger
}

// Client talks to the platform API. It implements connector.Connector and
// connector.Login and is safe for concurrent use.
type Client struct {
	config Config
	logger observe.Logger

	mu       sync.RWMutex
	token    string
	expiry   time.Time
	userName string
	found    int

	loginGroup singleflight.Group
}

// New creates a Client, applying defaults.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, ErrMissingCredentials
	}
	if cfg.GeocodePrefix == "" {
		cfg.GeocodePrefix = "GC"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	cfg.Retry = cfg.Retry.withDefaults()

	logger := cfg.Logger
	if logger == nil {
		logger = observe.NopLogger()
	}

	return &Client{
		config: cfg,
		logger: logger.WithScope("gcapi"),
	}, nil
}

// Name returns the connector identifier.
func (c *Client) Name() string {
	return "gcapi"
}

// CanHandle reports whether geocode carries this connector's prefix.
func (c *Client) CanHandle(geocode string) bool {
	return strings.HasPrefix(strings.ToUpper(geocode), c.config.GeocodePrefix)
}

// UserName returns the session's username, or "" before the first
// successful login.
func (c *Client) UserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userName
}

// CachesFound returns the account's found count. Zero before the first
// successful login; negative when the server reported it as unknown.
func (c *Client) CachesFound() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.found
}

// Login establishes or refreshes the session and updates the cached
// username and found count. Concurrent calls collapse into one request.
func (c *Client) Login(ctx context.Context) error {
	_, err, _ := c.loginGroup.Do("login", func() (any, error) {
		return nil, c.login(ctx)
	})
	return err
}

func (c *Client) login(ctx context.Context) error {
	c.mu.RLock()
	sessionValid := c.token != "" && time.Now().Before(c.expiry)
	c.mu.RUnlock()

	if !sessionValid {
		token, expiry, err := c.createSession(ctx)
		if err != nil {
			c.logger.Warn(ctx, "session creation failed",
				observe.Field{Key: "error", Value: err.Error()},
			)
			return err
		}
		c.mu.Lock()
		c.token = token
		c.expiry = expiry
		c.mu.Unlock()
	}

	profile, err := c.fetchProfile(ctx)
	if err != nil {
		c.logger.Warn(ctx, "profile fetch failed",
			observe.Field{Key: "error", Value: err.Error()},
		)
		return err
	}

	c.mu.Lock()
	c.userName = profile.Username
	c.found = profile.Finds
	c.mu.Unlock()

	c.logger.Info(ctx, "login complete",
		observe.Field{Key: "user", Value: profile.Username},
		observe.Field{Key: "finds", Value: profile.Finds},
	)
	return nil
}

type sessionRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string `json:"token"`
}

type profileResponse struct {
	Username string `json:"username"`
	Finds    int    `json:"finds"`
}

func (c *Client) createSession(ctx context.Context) (string, time.Time, error) {
	body, err := json.Marshal(sessionRequest{
		Username: c.config.Username,
		Password: c.config.Password,
	})
	if err != nil {
		return "", time.Time{}, fmt.Errorf("encode session request: %w", err)
	}

	var resp sessionResponse
	err = retryDo(ctx, c.config.Retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+sessionPath, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("create session request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		res, err := c.config.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("post session: %w", err)
		}
		defer func() { _ = res.Body.Close() }()

		switch {
		case res.StatusCode == http.StatusOK:
		case res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden:
			return ErrLoginRejected
		default:
			return &statusError{status: res.StatusCode}
		}

		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			return fmt.Errorf("decode session response: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", time.Time{}, err
	}

	return resp.Token, sessionExpiry(resp.Token), nil
}

// sessionExpiry reads the exp claim from the session token. The server
// signs the token; the client only schedules renewal, so the claims are
// read without signature verification.
func sessionExpiry(token string) time.Time {
	fallback := time.Now().Add(defaultSessionTTL)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return fallback
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return fallback
	}
	return exp.Time
}

func (c *Client) fetchProfile(ctx context.Context) (profileResponse, error) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	var resp profileResponse
	err := retryDo(ctx, c.config.Retry, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+profilePath, nil)
		if err != nil {
			return fmt.Errorf("create profile request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)

		res, err := c.config.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}
		defer func() { _ = res.Body.Close() }()

		if res.StatusCode != http.StatusOK {
			return &statusError{status: res.StatusCode}
		}

		if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
			return fmt.Errorf("decode profile response: %w", err)
		}
		return nil
	})
	if err != nil {
		return profileResponse{}, err
	}
	return resp, nil
}

// Ensure Client implements the connector capabilities.
var (
	_ connector.Connector = (*Client)(nil)
	_ connector.Login     = (*Client)(nil)
)
