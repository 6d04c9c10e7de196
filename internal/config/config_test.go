package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValidateDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration should be valid: %v", err)
	}
}

func TestValidateDetectsInvalidConfigurations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "unknown world type",
			mutate: func(cfg *Config) {
				cfg.World.Type = "pangaea"
			},
			wantErr: `world.type "pangaea" is not a known world type`,
		},
		{
			name: "resolution too small",
			mutate: func(cfg *Config) {
				cfg.World.Resolution = 1
			},
			wantErr: "world.resolution must be at least 2",
		},
		{
			name: "non positive bounds",
			mutate: func(cfg *Config) {
				cfg.World.Bounds.Width = 0
			},
			wantErr: "world.bounds width and height must be positive",
		},
		{
			name: "preview enabled without path",
			mutate: func(cfg *Config) {
				cfg.Preview.Enabled = true
				cfg.Preview.Path = ""
			},
			wantErr: "preview.path must be set when preview is enabled",
		},
		{
			name: "non positive preview cells",
			mutate: func(cfg *Config) {
				cfg.Preview.Enabled = true
				cfg.Preview.CellPixels = 0
			},
			wantErr: "preview.cell_pixels must be positive",
		},
		{
			name: "preview slice above grid",
			mutate: func(cfg *Config) {
				cfg.Preview.Enabled = true
				cfg.Preview.SliceZ = cfg.World.Resolution
			},
			wantErr: "preview.slice_z must be below world.resolution",
		},
		{
			name: "export enabled without path",
			mutate: func(cfg *Config) {
				cfg.Export.Enabled = true
				cfg.Export.Path = ""
			},
			wantErr: "export.path must be set when export is enabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected an error, got nil")
			}
			if err.Error() != tt.wantErr {
				t.Fatalf("unexpected error: got %q want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default config: %v", err)
	}
	if want := Default(); !reflect.DeepEqual(cfg, want) {
		t.Fatalf("default configuration mismatch:\nwant: %#v\n got: %#v", want, cfg)
	}
}

func TestLoadReadsFileAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.World.Type = "archipelago"
	cfg.World.Seed = 99

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("loaded configuration mismatch:\nwant: %#v\n got: %#v", cfg, got)
	}
}

func TestLoadInvalidConfiguration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.World.Resolution = 1

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err = Load(path)
	if err == nil {
		t.Fatalf("expected load to fail")
	}
	if !strings.Contains(err.Error(), "validate config: world.resolution must be at least 2") {
		t.Fatalf("unexpected error: %v", err)
	}
}
