package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBikeRushConfig()) {
		t.Errorf("embedded YAML and DefaultBikeRushConfig() disagree:\nyaml:    %+v\nbuiltin: %+v", cfg, DefaultBikeRushConfig())
	}
}

func TestBuiltinIsValid(t *testing.T) {
	if err := DefaultBikeRushConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
physics:
  max_speed: 200
level:
  duration_ms: 30000
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Physics.MaxSpeed != 200 {
		t.Errorf("MaxSpeed = %v, expected 200", cfg.Physics.MaxSpeed)
	}
	if cfg.Level.DurationMS != 30000 {
		t.Errorf("DurationMS = %v, expected 30000", cfg.Level.DurationMS)
	}
	// Untouched keys keep defaults
	if cfg.Physics.SpeedDrag != 0.995 {
		t.Errorf("SpeedDrag = %v, expected default 0.995", cfg.Physics.SpeedDrag)
	}
	if cfg.Pedal.GearMultipliers[1] != 3 {
		t.Errorf("gear 1 multiplier = %v, expected default 3", cfg.Pedal.GearMultipliers[1])
	}
	if len(cfg.Obstacles.Kinds) != 5 {
		t.Errorf("expected default kinds, got %d", len(cfg.Obstacles.Kinds))
	}
}

func TestParsePoolReplaces(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  moving_pool: [car]\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg.Obstacles.MovingPool, []string{"car"}) {
		t.Errorf("MovingPool = %v, expected [car]", cfg.Obstacles.MovingPool)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BikeRushConfig)
	}{
		{"zero max speed", func(c *BikeRushConfig) { c.Physics.MaxSpeed = 0 }},
		{"drag above one", func(c *BikeRushConfig) { c.Physics.SpeedDrag = 1.2 }},
		{"lateral drag zero", func(c *BikeRushConfig) { c.Physics.LateralDrag = 0 }},
		{"missing gear", func(c *BikeRushConfig) { delete(c.Pedal.GearMultipliers, 2) }},
		{"starting gear four", func(c *BikeRushConfig) { c.Pedal.StartingGear = 4 }},
		{"road outside field", func(c *BikeRushConfig) { c.Field.RoadHeight = 900 }},
		{"empty spawn window", func(c *BikeRushConfig) { c.Obstacles.MovingSpawnMaxMS = c.Obstacles.MovingSpawnMinMS }},
		{"unknown pool kind", func(c *BikeRushConfig) { c.Obstacles.StationaryPool = []string{"tractor"} }},
		{"empty pool", func(c *BikeRushConfig) { c.Obstacles.MovingPool = nil }},
		{"unknown damage", func(c *BikeRushConfig) {
			c.Obstacles.Kinds[KindRock] = KindConfig{Damage: "explode", Width: 1, Height: 1}
		}},
		{"zero duration", func(c *BikeRushConfig) { c.Level.DurationMS = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBikeRushConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fast.yaml")
	if err := os.WriteFile(path, []byte("physics:\n  acceleration: 0.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := LoadBikeRush(path)
	if err != nil {
		t.Fatalf("LoadBikeRush() failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("source = %q, expected custom", src)
	}
	if cfg.Physics.Acceleration != 0.5 {
		t.Errorf("Acceleration = %v, expected 0.5", cfg.Physics.Acceleration)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadBikeRush(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics:\n  max_speed: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadBikeRush(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid custom config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded default
	cfg, src, err := LoadBikeRush("")
	if err != nil {
		t.Fatalf("LoadBikeRush() failed: %v", err)
	}
	if src != SourceEmbedded || cfg.Physics.MaxSpeed != 150 {
		t.Errorf("got source %q max speed %v, expected embedded defaults", src, cfg.Physics.MaxSpeed)
	}

	// Local configs directory
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", configFile), []byte("physics:\n  max_speed: 120\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadBikeRush("")
	if src != SourceLocal || cfg.Physics.MaxSpeed != 120 {
		t.Errorf("got source %q max speed %v, expected local 120", src, cfg.Physics.MaxSpeed)
	}

	// User directory wins over local
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, configFile), []byte("physics:\n  max_speed: 90\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, src, _ = LoadBikeRush("")
	if src != SourceUser || cfg.Physics.MaxSpeed != 90 {
		t.Errorf("got source %q max speed %v, expected user 90", src, cfg.Physics.MaxSpeed)
	}
}
