// Package inbox provides the API client: the transport behind model.Reload,
// namespace listing, and the local cache persist hook.
package inbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mdaraban/inbox-go/internal/cache"
	"github.com/mdaraban/inbox-go/pkg/model"
)

var (
	_ model.Client    = (*Client)(nil)
	_ model.Persister = (*Client)(nil)
)

// Client talks to the API and owns the optional local model cache. It
// implements model.Client and, when a cache directory is configured,
// model.Persister.
type Client struct {
	cfg   Config
	httpc *http.Client
	store *cache.Store
}

// New validates the config and constructs a client. When Config.CacheDir is
// set the local cache is opened immediately; the caller should Close the
// client to release it.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		cfg:   cfg,
		httpc: &http.Client{Timeout: timeout},
	}
	if cfg.CacheDir != "" {
		store, err := cache.Open(cfg.CacheDir)
		if err != nil {
			return nil, fmt.Errorf("opening model cache: %w", err)
		}
		c.store = store
	}
	return c, nil
}

// BaseURL returns the API root without a trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/")
}

// Request performs one API call and decodes the JSON object body. Non-2xx
// responses become *APIError; connection failures are returned wrapped.
func (c *Client) Request(ctx context.Context, method, path string) (map[string]any, error) {
	var payload map[string]any
	if err := c.do(ctx, method, path, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// RequestList is Request for endpoints returning a JSON array of objects.
func (c *Client) RequestList(ctx context.Context, method, path string) ([]map[string]any, error) {
	var raw []json.RawMessage
	if err := c.do(ctx, method, path, &raw); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(raw))
	for _, item := range raw {
		var payload map[string]any
		if err := json.Unmarshal(item, &payload); err != nil {
			return nil, fmt.Errorf("decoding list item: %w", err)
		}
		out = append(out, payload)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, into any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL()+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if c.cfg.AccessToken != "" {
		req.SetBasicAuth(c.cfg.AccessToken, "")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// A non-JSON error body still yields a usable status-only error.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}
	if err := json.NewDecoder(resp.Body).Decode(into); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// Namespace fetches one namespace by id.
func (c *Client) Namespace(ctx context.Context, id string) (*model.Namespace, error) {
	ns := model.NewNamespace(c, id)
	if err := ns.Reload(ctx); err != nil {
		return nil, err
	}
	return ns, nil
}

// Namespaces lists the namespaces available to the access token.
func (c *Client) Namespaces(ctx context.Context) ([]*model.Namespace, error) {
	payloads, err := c.RequestList(ctx, http.MethodGet, "/"+model.ResourceNamespace)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Namespace, 0, len(payloads))
	for _, payload := range payloads {
		id, _ := payload["id"].(string)
		ns := model.NewNamespace(c, id)
		ns.Update(payload)
		out = append(out, ns)
	}
	return out, nil
}

// Persist writes a model's Raw document into the local cache. A client
// without a cache accepts and drops the write.
func (c *Client) Persist(m *model.Base) error {
	if c.store == nil {
		return nil
	}
	doc, err := json.Marshal(m.Raw())
	if err != nil {
		return fmt.Errorf("encoding %s %s: %w", m.Resource(), m.ID(), err)
	}
	return c.store.Put(m.Resource(), m.ID(), doc)
}

// Cached returns the locally cached document for a model, or
// cache.ErrNotFound when it was never persisted.
func (c *Client) Cached(resource, id string) (map[string]any, error) {
	if c.store == nil {
		return nil, cache.ErrNotFound
	}
	doc, err := c.store.Get(resource, id)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil, fmt.Errorf("decoding cached %s %s: %w", resource, id, err)
	}
	return payload, nil
}

// Close releases the local cache, if any.
func (c *Client) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}
