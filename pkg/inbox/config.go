package inbox

import (
	"errors"
	"net/url"
	"time"
)

// Config holds the parameters for constructing a Client.
type Config struct {
	// BaseURL is the API root, e.g. "https://api.example.com".
	BaseURL string `json:"base_url" yaml:"base_url"`

	// AccessToken authenticates requests when non-empty. Sent as the basic
	// auth username, matching the API's token convention.
	AccessToken string `json:"access_token" yaml:"access_token"`

	// CacheDir enables the local model cache when non-empty. Models
	// hydrated by Reload are persisted there.
	CacheDir string `json:"cache_dir" yaml:"cache_dir"`

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DefaultTimeout is applied when Config.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Config validation errors.
var (
	ErrBaseURLEmpty   = errors.New("base URL must not be empty")
	ErrBaseURLInvalid = errors.New("base URL must be an absolute http or https URL")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLEmpty
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrBaseURLInvalid
	}
	return nil
}
