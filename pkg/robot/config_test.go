package robot

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.WithDefaults()
	if cfg != DefaultConfig() {
		t.Errorf("WithDefaults() = %+v, want %+v", cfg, DefaultConfig())
	}

	cfg = Config{Host: "10.0.0.2", Port: 80, Timeout: Duration(2 * time.Second)}.WithDefaults()
	if cfg.Host != "10.0.0.2" || cfg.Port != 80 || cfg.Timeout.Duration() != 2*time.Second {
		t.Errorf("WithDefaults() overwrote set fields: %+v", cfg)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodi.json")
	cfg := Config{Host: "192.168.1.50", Port: 1234, Timeout: Duration(500 * time.Millisecond)}

	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"host\": \"192.168.1.50\",\n  \"port\": 1234,\n  \"timeout\": \"500ms\"\n}"
	if string(data) != want {
		t.Errorf("saved config:\n%s\nwant:\n%s", data, want)
	}

	loaded, err := LoadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != cfg {
		t.Errorf("LoadConfigFrom() = %+v, want %+v", *loaded, cfg)
	}
}

func TestConfig_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfigFrom(filepath.Join(dir, "missing.json")); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"timeout": "soon"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfigFrom(bad); err == nil {
		t.Error("expected an error for an invalid duration")
	}
}

func TestDuration_Seconds(t *testing.T) {
	var d Duration
	if err := d.UnmarshalJSON([]byte(`1.5`)); err != nil {
		t.Fatal(err)
	}
	if d.Duration() != 1500*time.Millisecond {
		t.Errorf("got %s, want 1.5s", d)
	}
}

func TestConfig_ApplyEnv(t *testing.T) {
	t.Setenv(EnvHost, "rodi.local")
	t.Setenv(EnvPort, "8080")

	cfg, err := DefaultConfig().ApplyEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Host != "rodi.local" || cfg.Port != 8080 {
		t.Errorf("ApplyEnv() = %+v", cfg)
	}

	t.Setenv(EnvPort, "eighty")
	if _, err := DefaultConfig().ApplyEnv(); err == nil {
		t.Error("expected an error for a non-numeric port")
	}
}
