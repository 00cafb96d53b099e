package portal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. PORTAL_BASE_URL.
	EnvPrefix = "PORTAL"

	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 30 * time.Second
	// MemorySession keeps the credential in memory only.
	MemorySession = "mem"
)

// Options defines how the portal reaches the backend and where it keeps the credential.
type Options struct {
	BaseURL    string        `yaml:"baseURL,omitempty" json:"baseURL,omitempty" envconfig:"BASE_URL" short:"u" long:"url" description:"backend base URL"`
	SessionURL string        `yaml:"sessionURL,omitempty" json:"sessionURL,omitempty" envconfig:"SESSION_URL" short:"s" long:"session" description:"credential store URL, mem keeps it in memory"`
	Timeout    time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" envconfig:"TIMEOUT" short:"t" long:"timeout" description:"request timeout, e.g. 30s"`
	UserAgent  string        `yaml:"userAgent,omitempty" json:"userAgent,omitempty" envconfig:"USER_AGENT" long:"user-agent" description:"User-Agent header"`
}

// Init fills in defaults.
func (o *Options) Init() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.SessionURL == "" {
		o.SessionURL = DefaultSessionURL()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = "medivac-portal/" + Version
	}
}

// Merge overrides o with every non-zero field of other.
func (o *Options) Merge(other *Options) {
	if other == nil {
		return
	}
	if other.BaseURL != "" {
		o.BaseURL = other.BaseURL
	}
	if other.SessionURL != "" {
		o.SessionURL = other.SessionURL
	}
	if other.Timeout > 0 {
		o.Timeout = other.Timeout
	}
	if other.UserAgent != "" {
		o.UserAgent = other.UserAgent
	}
}

// DefaultSessionURL returns $HOME/.medivac/session.json, or MemorySession
// when no home directory is known.
func DefaultSessionURL() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return MemorySession
	}
	return filepath.Join(home, ".medivac", "session.json")
}

// LoadOptions reads YAML options from configURL (any afs URL, optional),
// then applies PORTAL_* environment overrides.
func LoadOptions(ctx context.Context, configURL string) (*Options, error) {
	ret := &Options{}
	if configURL != "" {
		fs := afs.New()
		data, err := fs.DownloadWithURL(ctx, configURL)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", configURL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to parse config %v: %w", configURL, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, ret); err != nil {
		return nil, fmt.Errorf("failed to apply %v environment: %w", EnvPrefix, err)
	}
	return ret, nil
}
