package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/avolkov/clientbase/internal/domain/errors"
)

const (
	authEndpoint     = "/assignment_auth.jsp"
	customerEndpoint = "/assignment.jsp"

	// Token responses arrive as a JSON object with a fixed layout; the
	// access token occupies a fixed slice of the raw body.
	tokenPrefixLen = 19
	tokenSuffixLen = 3
)

// Client exposes operations to pull customers from the remote portal.
type Client interface {
	FetchCustomers(ctx context.Context) ([]json.RawMessage, error)
}

// HTTPClient implements Client via the remote portal HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	login      string
	password   string
	httpClient *http.Client
	logger     *slog.Logger
}

type credentials struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// NewHTTPClient creates a remote portal client with default timeout.
func NewHTTPClient(baseURL, login, password string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse remote api url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("remote api url must be absolute")
	}
	return &HTTPClient{
		baseURL:  parsed,
		login:    login,
		password: password,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// FetchCustomers authenticates against the remote portal and returns the
// raw customer records it exposes.
func (c *HTTPClient) FetchCustomers(ctx context.Context) ([]json.RawMessage, error) {
	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, customerEndpoint)
	endpoint.RawQuery = url.Values{"cmd": {"get_customer_list"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrRemoteImport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrRemoteImport, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("remote customer list failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("%w: unexpected status %s", domainErrors.ErrRemoteImport, resp.Status)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: decode customer list: %v", domainErrors.ErrRemoteImport, err)
	}
	return records, nil
}

func (c *HTTPClient) fetchToken(ctx context.Context) (string, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, authEndpoint)

	payload, err := json.Marshal(credentials{LoginID: c.login, Password: c.password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrRemoteImport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domainErrors.ErrRemoteImport, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.Error("remote auth failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return "", fmt.Errorf("%w: unexpected status %s", domainErrors.ErrRemoteImport, resp.Status)
	}
	if len(body) <= tokenPrefixLen+tokenSuffixLen {
		return "", fmt.Errorf("%w: malformed token response", domainErrors.ErrRemoteImport)
	}
	return string(body[tokenPrefixLen : len(body)-tokenSuffixLen]), nil
}
