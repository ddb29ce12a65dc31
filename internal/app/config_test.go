package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func parseConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("lifelab", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Resolve(fs); err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	return cfg
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lifelab.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestConfigDefaults(t *testing.T) {
	cfg := parseConfig(t)
	if cfg.Rule != "conway" || cfg.Topology != "wrap" {
		t.Fatalf("unexpected defaults: rule=%q topology=%q", cfg.Rule, cfg.Topology)
	}
	if cfg.Rows != 120 || cfg.Cols != 160 {
		t.Fatalf("unexpected default dimensions %dx%d", cfg.Rows, cfg.Cols)
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"rows": 40, "cols": 50, "rule": "highlife"}`)
	cfg := parseConfig(t, "-config", path)
	if cfg.Rows != 40 || cfg.Cols != 50 {
		t.Fatalf("file values not applied: %dx%d", cfg.Rows, cfg.Cols)
	}
	if cfg.Rule != "highlife" {
		t.Fatalf("rule %q, want highlife", cfg.Rule)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Topology != "wrap" {
		t.Fatalf("topology %q, want default wrap", cfg.Topology)
	}
}

func TestExplicitFlagsBeatConfigFile(t *testing.T) {
	path := writeConfigFile(t, `{"rows": 40, "rule": "highlife", "tps": 30}`)
	cfg := parseConfig(t, "-config", path, "-rows", "77", "-rule", "seeds")
	if cfg.Rows != 77 {
		t.Fatalf("rows %d, explicit flag must win over the file", cfg.Rows)
	}
	if cfg.Rule != "seeds" {
		t.Fatalf("rule %q, explicit flag must win over the file", cfg.Rule)
	}
	if cfg.TPS != 30 {
		t.Fatalf("tps %d, file must win over the default", cfg.TPS)
	}
}

func TestResolveReportsMissingFile(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("lifelab", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-config", "/does/not/exist.json"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if err := cfg.Resolve(fs); err == nil {
		t.Fatal("missing config file must be reported")
	}
}

func TestNewSessionFromConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 30, 40
	cfg.Rule = "B36/S23" // notation instead of a preset name
	cfg.Topology = "bounded"
	cfg.Pattern = "glider"

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Rules().String() != "B36/S23" {
		t.Fatalf("rule %s, want B36/S23", s.Rules())
	}
	if s.Topology().String() != "bounded" {
		t.Fatalf("topology %s, want bounded", s.Topology())
	}
	if s.Grid().Population() != 5 {
		t.Fatalf("glider stamp placed %d cells, want 5", s.Grid().Population())
	}
}

func TestNewSessionRandomFillByDefault(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols = 30, 40
	cfg.Density = 0.5

	s, err := NewSession(cfg)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	pop := s.Grid().Population()
	if pop == 0 || pop == 30*40 {
		t.Fatalf("random fill looks degenerate: population %d", pop)
	}
}

func TestNewSessionRejectsBadInputs(t *testing.T) {
	bad := []*Config{}

	cfg := NewConfig()
	cfg.Rule = "not-a-rule"
	bad = append(bad, cfg)

	cfg = NewConfig()
	cfg.Topology = "moebius"
	bad = append(bad, cfg)

	cfg = NewConfig()
	cfg.Pattern = "spaceship-of-theseus"
	bad = append(bad, cfg)

	for i, c := range bad {
		if _, err := NewSession(c); err == nil {
			t.Fatalf("case %d: expected an error", i)
		}
	}
}
