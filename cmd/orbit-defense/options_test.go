package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOptionsFromEnvironment(t *testing.T) {
	t.Setenv("ORBIT_CONFIG", "tuning.yaml")
	t.Setenv("ORBIT_SEED", "99")
	t.Setenv("ORBIT_MUTE", "true")
	t.Setenv("ORBIT_WS", "")
	t.Setenv("ORBIT_DEBUG", "")

	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.configPath != "tuning.yaml" {
		t.Errorf("Expected config from env, got %q", opts.configPath)
	}
	if !opts.seedSet || opts.seed != 99 {
		t.Errorf("Expected seed 99 from env, got %d (set %v)", opts.seed, opts.seedSet)
	}
	if !opts.mute || opts.debug {
		t.Errorf("Expected mute without debug, got mute %v debug %v", opts.mute, opts.debug)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("ORBIT_SEED", "")
	t.Setenv("ORBIT_WS", ":9000")

	opts, err := parseOptions([]string{"-seed", "7", "-ws", ":8090", "-debug"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !opts.seedSet || opts.seed != 7 {
		t.Errorf("Expected seed 7, got %d (set %v)", opts.seed, opts.seedSet)
	}
	if opts.wsAddr != ":8090" {
		t.Errorf("Expected :8090, got %q", opts.wsAddr)
	}
	if !opts.debug {
		t.Error("Expected debug flag")
	}
}

func TestSeedUnsetByDefault(t *testing.T) {
	t.Setenv("ORBIT_SEED", "")
	opts, err := parseOptions(nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.seedSet {
		t.Error("Expected seed unset")
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("Expected missing .env ignored, got %v", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("ORBIT_TEMPLATES=threats.yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ORBIT_TEMPLATES", "")
	os.Unsetenv("ORBIT_TEMPLATES")

	if err := loadEnv(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("ORBIT_TEMPLATES"); got != "threats.yaml" {
		t.Errorf("Expected threats.yaml, got %q", got)
	}
}
