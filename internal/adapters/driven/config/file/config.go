// Package file loads the module configuration from a TOML file:
// channel attributes, the index endpoint, the resource docroot and
// the competence database path.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/sitepark/citygov-search/internal/core/domain"
)

// Config is the citygov.toml layout.
type Config struct {
	Channel    ChannelConfig    `toml:"channel"`
	Index      IndexConfig      `toml:"index"`
	Resources  ResourceConfig   `toml:"resources"`
	Competence CompetenceConfig `toml:"competence"`
}

// ChannelConfig carries the raw publisher channel attributes.
type ChannelConfig struct {
	Attributes map[string]any `toml:"attributes"`
}

// IndexConfig points at the Solr instance and index base name.
type IndexConfig struct {
	URL  string `toml:"url"`
	Name string `toml:"name"`
}

// ResourceConfig points at the exported resource docroot.
type ResourceConfig struct {
	Docroot string `toml:"docroot"`
}

// CompetenceConfig points at the competence range side-database.
type CompetenceConfig struct {
	Database string `toml:"database"`
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return &cfg, nil
}

// ChannelAttributes derives the channel feature flags from the
// configured attribute bag.
func (c *Config) ChannelAttributes() domain.ChannelAttributes {
	return domain.NewChannelAttributes(c.Channel.Attributes)
}
