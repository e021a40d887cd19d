package statsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/omarshaarawi/courtside/internal/cache"
	"github.com/omarshaarawi/courtside/internal/config"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrUnexpectedShape  = errors.New("unexpected response shape")
)

type Shape int

const (
	AnyShape Shape = iota
	ListShape
	ObjectShape
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      cache.Store
}

func NewClient(cfg config.StatsAPI) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// WithCache serves repeated GETs from store. A nil store disables caching.
func (c *Client) WithCache(store cache.Store) *Client {
	c.cache = store
	return c
}

// Get fetches endpoint and decodes the body into result. The body must open
// with '[' for ListShape and '{' for ObjectShape.
func (c *Client) Get(ctx context.Context, endpoint string, params map[string]string, shape Shape, result interface{}) error {
	key := cache.Key(endpoint, params)
	if body, ok := c.cached(ctx, key); ok {
		if err := decode(body, shape, result); err == nil {
			return nil
		}
	}

	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := decode(body, shape, result); err != nil {
		return err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, body); err != nil {
			slog.Warn("Failed to cache response", "endpoint", endpoint, "error", err)
		}
	}
	return nil
}

func (c *Client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			slog.Warn("Failed to read cache", "key", key, "error", err)
		}
		return nil, false
	}
	return body, true
}

func (c *Client) fetch(ctx context.Context, endpoint string, params map[string]string) ([]byte, error) {
	url := fmt.Sprintf("%s%s", c.baseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	for key, value := range params {
		q.Set(key, value)
	}
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}
	return body, nil
}

func decode(body []byte, shape Shape, result interface{}) error {
	trimmed := bytes.TrimSpace(body)
	switch shape {
	case ListShape:
		if len(trimmed) == 0 || trimmed[0] != '[' {
			return fmt.Errorf("%w: expected a JSON array", ErrUnexpectedShape)
		}
	case ObjectShape:
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return fmt.Errorf("%w: expected a JSON object", ErrUnexpectedShape)
		}
	}

	if err := json.Unmarshal(trimmed, result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
