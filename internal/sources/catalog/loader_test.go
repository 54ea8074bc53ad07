package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoad(t *testing.T) {
	tmpDir := t.TempDir()
	yamlPath := filepath.Join(tmpDir, "services.yaml")

	yamlContent := `---
services:
  - id: room_clean
    name: Room cleaning
    durationMinutes: 60
  - id: deep_clean
    name: Deep cleaning
    durationMinutes: 120
`

	err := os.WriteFile(yamlPath, []byte(yamlContent), 0o644)
	if err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	loader := NewLoader(yamlPath)
	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(config.Services) != 2 {
		t.Fatalf("Load() returned %d services, want 2", len(config.Services))
	}
	if config.Services[1].DurationMinutes != 120 {
		t.Errorf("deep_clean duration = %d, want 120", config.Services[1].DurationMinutes)
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/services.yaml")
	_, err := loader.Load()
	if err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestMapServices(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantLen   int
		wantErr   bool
		wantFirst string
	}{
		{
			name: "valid entries",
			config: Config{Services: []ServiceProps{
				{ID: "room_clean", Name: "Room cleaning", DurationMinutes: 60},
			}},
			wantLen:   1,
			wantFirst: "room_clean",
		},
		{
			name: "entry without id is skipped",
			config: Config{Services: []ServiceProps{
				{Name: "Nameless"},
				{ID: "kitchen_clean", Name: "Kitchen cleaning"},
			}},
			wantLen:   1,
			wantFirst: "kitchen_clean",
		},
		{
			name:    "empty config",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services, err := NewMapper().MapServices(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("MapServices() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("MapServices() error = %v", err)
			}
			if len(services) != tt.wantLen {
				t.Fatalf("got %d services, want %d", len(services), tt.wantLen)
			}
			if services[0].ID != tt.wantFirst {
				t.Errorf("first service = %s, want %s", services[0].ID, tt.wantFirst)
			}
		})
	}
}

func TestMapServicesDefaultDuration(t *testing.T) {
	config := Config{Services: []ServiceProps{{ID: "room_clean"}}}

	services, err := NewMapper().MapServices(config)
	if err != nil {
		t.Fatalf("MapServices() error = %v", err)
	}
	if services[0].DurationMinutes != 60 {
		t.Errorf("default duration = %d, want 60", services[0].DurationMinutes)
	}
	if services[0].Name != "room_clean" {
		t.Errorf("default name = %s, want id fallback", services[0].Name)
	}
}
