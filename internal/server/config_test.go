package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quantfield/collateral-allocator/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.UploadSizeBytes() != constants.DefaultMaxUploadSizeBytes {
		t.Errorf("upload size = %d, expected %d", cfg.UploadSizeBytes(), constants.DefaultMaxUploadSizeBytes)
	}
}

func TestLoadConfigParsesSizes(t *testing.T) {
	tests := []struct {
		name     string
		size     string
		expected int64
	}{
		{"plain bytes", "1024", 1024},
		{"kilobytes", "64KB", 64 * 1024},
		{"megabytes", "2MB", 2 * 1024 * 1024},
		{"byte suffix", "512B", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "server.yaml")
			content := "address: \":9090\"\nmaxUploadSize: \"" + tt.size + "\"\n"
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			cfg, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Address != ":9090" {
				t.Errorf("address = %q, expected :9090", cfg.Address)
			}
			if cfg.UploadSizeBytes() != tt.expected {
				t.Errorf("upload size = %d, expected %d", cfg.UploadSizeBytes(), tt.expected)
			}
		})
	}
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("maxUploadSize: \"lots\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected error for unparsable size")
	}
}
