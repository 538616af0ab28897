package config

import (
	"os"
	"strings"

	"github.com/sm-menu/cli/internal/domain"
)

// Provider resolves configuration values. Resolution priority:
//  1. Environment variable (SM_MENU_<KEY>)
//  2. Preferences file
//  3. Default
type Provider struct {
	path    string
	values  map[string]string
	unknown []string
	getenv  func(string) string
}

// NewProvider loads the preferences file at path.
func NewProvider(path string) (*Provider, error) {
	values, unknown, err := load(path)
	if err != nil {
		return nil, err
	}
	return &Provider{path: path, values: values, unknown: unknown, getenv: os.Getenv}, nil
}

// NewProviderFrom builds a provider over in-memory values.
func NewProviderFrom(values map[string]string, getenv func(string) string) *Provider {
	if values == nil {
		values = make(map[string]string)
	}
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	return &Provider{values: values, getenv: getenv}
}

// Path returns the file the values were read from.
func (p *Provider) Path() string {
	return p.path
}

// UnknownKeys lists the keys in the file that were not recognised.
func (p *Provider) UnknownKeys() []string {
	return p.unknown
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	if v := p.getenv(EnvPrefix + strings.ToUpper(key)); v != "" {
		return v, true
	}
	if v, ok := p.values[key]; ok {
		return v, true
	}
	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}
	return "", false
}

// GetAll returns every known key resolved through Get.
func (p *Provider) GetAll() map[string]string {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		if v, ok := p.Get(key.Name); ok {
			result[key.Name] = v
		}
	}
	return result
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
