package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tidycss/tidycss/internal/lint"
)

// Config is the top-level configuration.
type Config struct {
	Rules     map[string]RuleCfg `yaml:"rules"`
	Ignore    []string           `yaml:"ignore"`
	Overrides []Override         `yaml:"overrides"`
}

// Override applies rule settings to files matching glob patterns.
type Override struct {
	Files []string           `yaml:"files"`
	Rules map[string]RuleCfg `yaml:"rules"`
}

// RuleCfg is a YAML union for one rule's severity. It accepts the same
// vocabulary as inline directives: booleans, the numbers 0-2, and the
// strings "error", "warning" and "off".
type RuleCfg struct {
	Level lint.Level
}

// UnmarshalYAML implements custom YAML unmarshalling for RuleCfg.
// It handles three forms:
//   - true / false -> warning / disabled
//   - 0, 1, 2      -> disabled, warning, error
//   - "off", "warning", "error"
func (r *RuleCfg) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("rule severity must be a scalar, got %v", value.Kind)
	}

	var b bool
	if err := value.Decode(&b); err == nil {
		if b {
			r.Level = lint.Warn
		} else {
			r.Level = lint.Disabled
		}
		return nil
	}

	var n int
	if err := value.Decode(&n); err == nil {
		switch n {
		case 0:
			r.Level = lint.Disabled
		case 1:
			r.Level = lint.Warn
		case 2:
			r.Level = lint.Err
		default:
			return fmt.Errorf("rule severity %d out of range", n)
		}
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid rule severity: %w", err)
	}
	switch strings.ToLower(s) {
	case "off", "false":
		r.Level = lint.Disabled
	case "warn", "warning", "true":
		r.Level = lint.Warn
	case "err", "error":
		r.Level = lint.Err
	default:
		return fmt.Errorf("unknown rule severity %q", s)
	}
	return nil
}

// Ruleset converts a rule map into the engine's severity table.
func Ruleset(rules map[string]RuleCfg) lint.Ruleset {
	set := make(lint.Ruleset, len(rules))
	for id, rc := range rules {
		set[id] = rc.Level
	}
	return set
}
