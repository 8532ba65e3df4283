package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("UNSPLASH_ACCESS_KEY", "")
	t.Setenv("UNSPLASH_API_URL", "")
	t.Setenv("UNSPLASH_TIMEOUT", "")
	os.Unsetenv("UNSPLASH_API_URL")
	os.Unsetenv("UNSPLASH_TIMEOUT")

	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Missing .env should be ignored, got %v", err)
	}

	if env.BaseURL != "https://api.unsplash.com" {
		t.Errorf("Expected default base URL, got %s", env.BaseURL)
	}
	if env.Timeout != 30*time.Second {
		t.Errorf("Expected default timeout 30s, got %v", env.Timeout)
	}
}

func TestLoadEnv_FromEnvironment(t *testing.T) {
	t.Setenv("UNSPLASH_ACCESS_KEY", "env-key")
	t.Setenv("UNSPLASH_API_URL", "http://localhost:9999")
	t.Setenv("UNSPLASH_TIMEOUT", "12s")

	env, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if env.AccessKey != "env-key" {
		t.Errorf("Expected access key env-key, got %s", env.AccessKey)
	}
	if env.BaseURL != "http://localhost:9999" {
		t.Errorf("Expected base URL from env, got %s", env.BaseURL)
	}
	if env.Timeout != 12*time.Second {
		t.Errorf("Expected 12s timeout, got %v", env.Timeout)
	}
}

func TestLoadEnv_FromFile(t *testing.T) {
	// Register cleanup and clear the variable so the file value is picked up
	t.Setenv("UNSPLASH_ACCESS_KEY", "")
	os.Unsetenv("UNSPLASH_ACCESS_KEY")

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("UNSPLASH_ACCESS_KEY=file-key\n"), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	env, err := LoadEnv(envFile)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if env.AccessKey != "file-key" {
		t.Errorf("Expected access key from file, got %q", env.AccessKey)
	}
}

func TestLoadEnv_InvalidTimeout(t *testing.T) {
	t.Setenv("UNSPLASH_TIMEOUT", "not-a-duration")

	if _, err := LoadEnv(filepath.Join(t.TempDir(), ".env")); err == nil {
		t.Error("Expected error for invalid timeout, got nil")
	}
}
