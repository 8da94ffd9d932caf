package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/flatflow/flatflow/pkg/feature"
)

// DefaultFilename is the conventional name of the project configuration file.
const DefaultFilename = "flatflow.yaml"

// Config is the startup configuration for a FlatFlow process.
type Config struct {
	// Features maps registered flag names to the value they should hold
	// after startup, e.g. use_bpipe: true.
	Features map[string]bool `yaml:"features,omitempty"`
}

// Load reads a configuration file. A missing file is not an error: flags
// keep their defaults, so a process without a flatflow.yaml behaves exactly
// like one configured with an empty features map.
func Load(path string) (*Config, error) {
	conf := &Config{}
	text, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return conf, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(text, conf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return conf, nil
}

// Apply sets the configured flags, then applies environment overrides so
// that FLATFLOW_* variables win over the file. Names that match no
// registered flag are skipped with a warning.
func (c *Config) Apply() {
	for name, enabled := range c.Features {
		f, ok := feature.Lookup(name)
		if !ok {
			log.Warnf("Ignoring unknown feature flag %q", name)
			continue
		}
		f.SetEnabled(enabled)
	}
	feature.SetFromEnv()
}
