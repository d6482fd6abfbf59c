package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidycss/tidycss/internal/lint"

	// Import all rule packages so their init() functions register rules.
	_ "github.com/tidycss/tidycss/internal/rules/all"
)

// --- YAML parsing tests ---

func TestParseValidYAML(t *testing.T) {
	cfg := loadValidYAMLFixture(t)

	t.Run("rules", func(t *testing.T) {
		if len(cfg.Rules) != 4 {
			t.Fatalf("expected 4 rules, got %d", len(cfg.Rules))
		}
		if cfg.Rules["empty-rules"].Level != lint.Warn {
			t.Error("empty-rules should be a warning")
		}
		if cfg.Rules["ids"].Level != lint.Disabled {
			t.Error("ids should be disabled")
		}
		if cfg.Rules["important"].Level != lint.Err {
			t.Error("important should be an error")
		}
		if cfg.Rules["floats"].Level != lint.Err {
			t.Error("floats should be an error")
		}
	})

	t.Run("ignore", func(t *testing.T) {
		if len(cfg.Ignore) != 2 {
			t.Fatalf("expected 2 ignore patterns, got %d", len(cfg.Ignore))
		}
		if cfg.Ignore[0] != "vendor/**" {
			t.Errorf("expected vendor/**, got %s", cfg.Ignore[0])
		}
	})

	t.Run("overrides", func(t *testing.T) {
		if len(cfg.Overrides) != 1 {
			t.Fatalf("expected 1 override, got %d", len(cfg.Overrides))
		}
		if cfg.Overrides[0].Files[0] != "legacy/**" {
			t.Errorf("expected legacy/**, got %s", cfg.Overrides[0].Files[0])
		}
		if cfg.Overrides[0].Rules["star-property-hack"].Level != lint.Disabled {
			t.Error("star-property-hack should be disabled in override")
		}
	})
}

func loadValidYAMLFixture(t *testing.T) *Config {
	t.Helper()
	yml := `
rules:
  empty-rules: true
  ids: false
  important: error
  floats: 2
ignore:
  - "vendor/**"
  - "node_modules/**"
overrides:
  - files:
      - "legacy/**"
    rules:
      star-property-hack: off
`
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, configFileName)
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return cfg
}

func TestRuleCfgSeverityForms(t *testing.T) {
	cases := []struct {
		yaml string
		want lint.Level
	}{
		{"true", lint.Warn},
		{"false", lint.Disabled},
		{"0", lint.Disabled},
		{"1", lint.Warn},
		{"2", lint.Err},
		{"warning", lint.Warn},
		{"error", lint.Err},
		{"off", lint.Disabled},
	}

	for _, tc := range cases {
		yml := "rules:\n  empty-rules: " + tc.yaml + "\n"
		dir := t.TempDir()
		cfgPath := filepath.Join(dir, configFileName)
		if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(cfgPath)
		if err != nil {
			t.Fatalf("Load(%q) returned error: %v", tc.yaml, err)
		}
		if got := cfg.Rules["empty-rules"].Level; got != tc.want {
			t.Errorf("severity %q: got %v, want %v", tc.yaml, got, tc.want)
		}
	}
}

func TestRuleCfgRejectsUnknownSeverity(t *testing.T) {
	yml := `
rules:
  empty-rules: loud
`
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, configFileName)
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected error for unknown severity")
	}
}

func TestInvalidYAMLReturnsError(t *testing.T) {
	yml := `
rules:
  empty-rules: [[[invalid
`
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, configFileName)
	if err := os.WriteFile(cfgPath, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(cfgPath); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/.tidycss.yml")
	if err == nil {
		t.Fatal("expected error for nonexistent file")
	}
}

// --- Discovery tests ---

func TestDiscoverFindsInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, configFileName)
	if err := os.WriteFile(cfgPath, []byte("rules: {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverFindsInParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "subdir")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}
	cfgPath := filepath.Join(parent, configFileName)
	if err := os.WriteFile(cfgPath, []byte("rules: {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != cfgPath {
		t.Errorf("expected %s, got %s", cfgPath, found)
	}
}

func TestDiscoverStopsAtGitBoundary(t *testing.T) {
	// Setup: grandparent has config, parent has .git, child is startDir.
	// Discover should NOT find the config above .git.
	grandparent := t.TempDir()
	parent := filepath.Join(grandparent, "repo")
	child := filepath.Join(parent, "src")
	if err := os.MkdirAll(child, 0o755); err != nil {
		t.Fatal(err)
	}

	gitDir := filepath.Join(parent, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatal(err)
	}

	cfgPath := filepath.Join(grandparent, configFileName)
	if err := os.WriteFile(cfgPath, []byte("rules: {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(child)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string (stopped at .git), got %s", found)
	}
}

func TestDiscoverReturnsEmptyWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	// Put a .git so we don't walk out of the tmp dir
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover returned error: %v", err)
	}
	if found != "" {
		t.Errorf("expected empty string, got %s", found)
	}
}

// --- Defaults and merge tests ---

func TestDefaultsAllRulesWarn(t *testing.T) {
	cfg := Defaults()

	if len(cfg.Rules) == 0 {
		t.Fatal("expected defaults to contain rules")
	}
	for id, rc := range cfg.Rules {
		if rc.Level != lint.Warn {
			t.Errorf("rule %q should default to warning, got %v", id, rc.Level)
		}
	}

	for _, id := range []string{"empty-rules", "errors", "important", "zero-units"} {
		if _, ok := cfg.Rules[id]; !ok {
			t.Errorf("rule %q not found in defaults", id)
		}
	}
}

func TestMergeNilLoaded(t *testing.T) {
	defaults := Defaults()
	merged := Merge(defaults, nil)

	if len(merged.Rules) != len(defaults.Rules) {
		t.Fatalf("expected %d rules, got %d", len(defaults.Rules), len(merged.Rules))
	}
}

func TestMergeDisabledRule(t *testing.T) {
	defaults := Defaults()
	loaded := &Config{
		Rules: map[string]RuleCfg{
			"empty-rules": {Level: lint.Disabled},
		},
	}

	merged := Merge(defaults, loaded)

	if merged.Rules["empty-rules"].Level != lint.Disabled {
		t.Error("empty-rules should be disabled after merge")
	}
	if merged.Rules["ids"].Level != lint.Warn {
		t.Error("ids should remain a warning")
	}
}

func TestMergePreservesIgnoreAndOverrides(t *testing.T) {
	defaults := Defaults()
	loaded := &Config{
		Ignore: []string{"vendor/**"},
		Overrides: []Override{
			{
				Files: []string{"legacy/**"},
				Rules: map[string]RuleCfg{
					"star-property-hack": {Level: lint.Disabled},
				},
			},
		},
	}

	merged := Merge(defaults, loaded)

	if len(merged.Ignore) != 1 || merged.Ignore[0] != "vendor/**" {
		t.Errorf("ignore not preserved: %v", merged.Ignore)
	}
	if len(merged.Overrides) != 1 {
		t.Fatalf("expected 1 override, got %d", len(merged.Overrides))
	}
}

// --- Effective tests ---

func TestEffectiveOverrideAppliesPerFile(t *testing.T) {
	cfg := Defaults()
	cfg.Overrides = []Override{
		{
			Files: []string{"legacy/**"},
			Rules: map[string]RuleCfg{
				"star-property-hack": {Level: lint.Disabled},
			},
		},
	}

	eff := Effective(cfg, "legacy/ie6.css")
	if eff["star-property-hack"].Level != lint.Disabled {
		t.Error("star-property-hack should be disabled for legacy/ie6.css")
	}
	if eff["empty-rules"].Level != lint.Warn {
		t.Error("empty-rules should remain a warning for legacy/ie6.css")
	}

	eff2 := Effective(cfg, "site.css")
	if eff2["star-property-hack"].Level != lint.Warn {
		t.Error("star-property-hack should remain a warning for site.css")
	}
}

func TestEffectiveLaterOverridesWin(t *testing.T) {
	cfg := Defaults()
	cfg.Overrides = []Override{
		{
			Files: []string{"themes/**"},
			Rules: map[string]RuleCfg{
				"important": {Level: lint.Err},
			},
		},
		{
			Files: []string{"themes/admin/**"},
			Rules: map[string]RuleCfg{
				"important": {Level: lint.Disabled},
			},
		},
	}

	// themes/admin/base.css matches both overrides; second should win
	eff := Effective(cfg, "themes/admin/base.css")
	if eff["important"].Level != lint.Disabled {
		t.Error("important should be disabled (later override wins)")
	}
}

// --- Ruleset conversion ---

func TestRulesetConversion(t *testing.T) {
	rules := map[string]RuleCfg{
		"empty-rules": {Level: lint.Err},
		"ids":         {Level: lint.Disabled},
	}

	set := Ruleset(rules)
	if set["empty-rules"] != lint.Err {
		t.Error("empty-rules should be an error")
	}
	if set["ids"] != lint.Disabled {
		t.Error("ids should be disabled")
	}
}
