package iodoc

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CLIConfig holds defaults loaded from a --config YAML file: routing
// parameters and render settings, used when a document omits
// routing_settings or render_settings entirely.
type CLIConfig struct {
	Routing *RoutingSettings `yaml:"routing_settings"`
	Render  *RenderSettings  `yaml:"render_settings"`
}

// LoadCLIConfig reads and parses a CLIConfig from path.
func LoadCLIConfig(path string) (*CLIConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("iodoc: reading config %q: %w", path, err)
	}

	var cfg CLIConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("iodoc: parsing config %q: %w", path, err)
	}

	return &cfg, nil
}
