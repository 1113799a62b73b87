package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	// Verify default API config
	if cfg.API.BaseURL != "http://localhost:8080/api/weblarek" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Errorf("API.TimeoutSeconds = %d, want 10", cfg.API.TimeoutSeconds)
	}

	// Verify default server config
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
	if cfg.Server.Watch {
		t.Error("Server.Watch should be false by default")
	}

	// Verify default TUI config
	if cfg.TUI.Currency != "synapses" {
		t.Errorf("TUI.Currency = %q, want %q", cfg.TUI.Currency, "synapses")
	}
	if cfg.TUI.CardWidth != 30 {
		t.Errorf("TUI.CardWidth = %d, want 30", cfg.TUI.CardWidth)
	}
	if !cfg.TUI.Bell {
		t.Error("TUI.Bell should be true by default")
	}

	// Verify default logging config
	if !cfg.Logging.Enabled {
		t.Error("Logging.Enabled should be true by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestAPIConfig_Timeout(t *testing.T) {
	tests := []struct {
		seconds  int
		expected time.Duration
	}{
		{0, 0},
		{1, time.Second},
		{30, 30 * time.Second},
	}

	for _, tt := range tests {
		cfg := APIConfig{TimeoutSeconds: tt.seconds}
		if got := cfg.Timeout(); got != tt.expected {
			t.Errorf("Timeout() with %d = %v, want %v", tt.seconds, got, tt.expected)
		}
	}
}

func TestLoggingConfig_LogDir(t *testing.T) {
	cfg := LoggingConfig{Dir: "/var/log/larek"}
	if cfg.LogDir() != "/var/log/larek" {
		t.Errorf("LogDir() = %q, want explicit dir", cfg.LogDir())
	}

	cfg.Dir = ""
	if cfg.LogDir() != ConfigDir() {
		t.Errorf("LogDir() = %q, want %q", cfg.LogDir(), ConfigDir())
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		result := ConfigDir()
		expected := "/custom/config/larek"
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		result := ConfigDir()

		// Should be based on home directory
		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, ".config", "larek")
		if result != expected {
			t.Errorf("ConfigDir() = %q, want %q", result, expected)
		}
	})
}

func TestConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	result := ConfigFile()
	expected := "/custom/config/larek/config.yaml"
	if result != expected {
		t.Errorf("ConfigFile() = %q, want %q", result, expected)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TUI.Currency != "synapses" {
			t.Errorf("Load().TUI.Currency = %q, want %q", cfg.TUI.Currency, "synapses")
		}
	})

	t.Run("from file", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "api:\n  base_url: https://larek.example.com/api\n  timeout_seconds: 3\ntui:\n  card_width: 40\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			t.Fatalf("ReadInConfig() error = %v", err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.API.BaseURL != "https://larek.example.com/api" {
			t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
		}
		if cfg.API.Timeout() != 3*time.Second {
			t.Errorf("API.Timeout() = %v, want 3s", cfg.API.Timeout())
		}
		if cfg.TUI.CardWidth != 40 {
			t.Errorf("TUI.CardWidth = %d, want 40", cfg.TUI.CardWidth)
		}
		// Untouched keys keep defaults
		if cfg.Server.Addr != ":8080" {
			t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("logging.level", "verbose")

		_, err := Load()
		if err == nil {
			t.Fatal("Load() should fail for an invalid log level")
		}
		if _, ok := err.(ValidationErrors); !ok {
			t.Errorf("Load() error type = %T, want ValidationErrors", err)
		}
	})

	viper.Reset()
}
