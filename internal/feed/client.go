package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/five82/devicedeck/internal/catalog"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var _ catalog.Source = (*Client)(nil)

// Client talks to a catalog feed over HTTP.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultFeedHost  = "127.0.0.1:8080"
	defaultUserAgent = "devicedeck/0.1"
	requestTimeout   = 10 * time.Second
	catalogPath      = "/api/catalog"
)

// NewClient builds a Client for the given base URL. A bare host:port is
// treated as http.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCatalog retrieves every list the feed publishes.
func (c *Client) FetchCatalog(ctx context.Context) ([]catalog.List, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var doc catalog.Document
	if err := c.do(ctx, http.MethodGet, catalogPath, &doc); err != nil {
		return nil, err
	}
	lists, err := doc.Build()
	if err != nil {
		return nil, fmt.Errorf("feed catalog: %w", err)
	}
	return lists, nil
}

// Load implements catalog.Source.
func (c *Client) Load(ctx context.Context) ([]catalog.List, error) {
	return c.FetchCatalog(ctx)
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("feed %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = defaultFeedHost
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse feed url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
