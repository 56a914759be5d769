package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.MaxFileSizeMB != 50 {
		t.Errorf("MaxFileSizeMB = %d, want default 50", cfg.Data.MaxFileSizeMB)
	}
	if !cfg.Cache.Enabled || cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("cache defaults = %+v", cfg.Cache)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Data.Directory = "/srv/rates"
	cfg.Cache.TTLSeconds = 60
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Data.Directory != "/srv/rates" {
		t.Errorf("Directory = %q", loaded.Data.Directory)
	}
	if loaded.Cache.TTLSeconds != 60 {
		t.Errorf("TTLSeconds = %d, want 60", loaded.Cache.TTLSeconds)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"data":{"directory":"/srv/rates"}}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Data.Directory != "/srv/rates" {
		t.Errorf("Directory = %q", cfg.Data.Directory)
	}
	// Fields the file omits keep their defaults.
	if cfg.Cache.TTLSeconds != 3600 {
		t.Errorf("TTLSeconds = %d, want default 3600", cfg.Cache.TTLSeconds)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid JSON accepted")
	}
}
