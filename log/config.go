package log

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config models the optional log config file.
//
//	defaultLevel: info
//	filters:
//	  - "debug+:simulate*"
//
// Filters are zapfilter rules keyed by logger names. The default
// level acts as catch-all for loggers not matched by any filter.
type Config struct {
	DefaultLevel string   `yaml:"defaultLevel"`
	Filters      []string `yaml:"filters"`
}

// LoadConfig reads a log config from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read log config: %w", err)
	}
	ret := &Config{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("parse log config: %w", err)
	}
	return ret, nil
}

// Level returns the configured default level. Falls back to the given
// level when unset or unparsable.
func (c *Config) Level(fallback Level) Level {
	if c.DefaultLevel == "" {
		return fallback
	}
	level, err := ParseLevel(c.DefaultLevel)
	if err != nil {
		return fallback
	}
	return level
}

// Rules returns the zapfilter rules of this config followed by a
// catch-all rule at the default level. Loggers not matched by any
// filter keep the default behavior this way.
func (c *Config) Rules(fallback Level) string {
	rules := make([]string, 0, len(c.Filters)+1)
	rules = append(rules, c.Filters...)
	rules = append(rules, fmt.Sprintf("%s+:*", c.Level(fallback)))
	return strings.Join(rules, " ")
}
