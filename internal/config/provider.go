// SPDX-License-Identifier: MPL-2.0

package config

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	// The file must exist.
	ConfigFilePath string
	// ResourcesDir is the bundle's Resources directory; the default config
	// location is <ResourcesDir>/launcher.cue and missing is not an error.
	ResourcesDir string
}

// Provider loads configuration from explicit options.
type Provider interface {
	Load(opts LoadOptions) (*Config, error)
}

type fileProvider struct{}

// NewProvider creates a configuration provider backed by the filesystem.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(opts LoadOptions) (*Config, error) {
	return Load(opts)
}
