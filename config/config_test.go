package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("LABELSCAN_SERVER_PORT")
		os.Unsetenv("LABELSCAN_SERVER_ENVIRONMENT")
		os.Unsetenv("LABELSCAN_GOOGLE_CREDENTIALS_FILE")
		os.Unsetenv("LABELSCAN_GOOGLE_PROJECT_ID")
		os.Unsetenv("LABELSCAN_GOOGLE_API_KEY")
		os.Unsetenv("LABELSCAN_GOOGLE_GEMINI_MODEL")
		os.Unsetenv("LABELSCAN_GOOGLE_GEMINI_BASE_URL")
		os.Unsetenv("LABELSCAN_GOOGLE_VISION_BASE_URL")
		os.Unsetenv("LABELSCAN_TRANSLATE_BASE_URL")
		os.Unsetenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Google.VisionBaseURL != "https://vision.googleapis.com" {
			t.Errorf("Google.VisionBaseURL = %s, want https://vision.googleapis.com", cfg.Google.VisionBaseURL)
		}
		if cfg.Google.GeminiBaseURL != "https://generativelanguage.googleapis.com" {
			t.Errorf("Google.GeminiBaseURL = %s, want https://generativelanguage.googleapis.com", cfg.Google.GeminiBaseURL)
		}
		if cfg.Google.GeminiModel == "" {
			t.Error("Google.GeminiModel is empty, want default model")
		}
		if cfg.Google.Timeout != 60*time.Second {
			t.Errorf("Google.Timeout = %v, want 60s", cfg.Google.Timeout)
		}
		if cfg.Translate.BaseURL != "https://libretranslate.com" {
			t.Errorf("Translate.BaseURL = %s, want https://libretranslate.com", cfg.Translate.BaseURL)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABELSCAN_SERVER_PORT", "9000")
		os.Setenv("LABELSCAN_SERVER_ENVIRONMENT", "production")
		os.Setenv("LABELSCAN_GOOGLE_GEMINI_MODEL", "gemini-test-model")
		os.Setenv("LABELSCAN_TRANSLATE_BASE_URL", "http://localhost:5000")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9000" {
			t.Errorf("Server.Port = %s, want 9000", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Google.GeminiModel != "gemini-test-model" {
			t.Errorf("Google.GeminiModel = %s, want gemini-test-model", cfg.Google.GeminiModel)
		}
		if cfg.Translate.BaseURL != "http://localhost:5000" {
			t.Errorf("Translate.BaseURL = %s, want http://localhost:5000", cfg.Translate.BaseURL)
		}
	})

	t.Run("falls back to GOOGLE_APPLICATION_CREDENTIALS", func(t *testing.T) {
		cleanupEnv()
		credFile := filepath.Join(t.TempDir(), "sa.json")
		if err := os.WriteFile(credFile, []byte(`{"type":"service_account"}`), 0o600); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
		os.Setenv("GOOGLE_APPLICATION_CREDENTIALS", credFile)
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Google.CredentialsFile != credFile {
			t.Errorf("Google.CredentialsFile = %s, want %s", cfg.Google.CredentialsFile, credFile)
		}
	})

	t.Run("rejects unreadable credentials file", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("LABELSCAN_GOOGLE_CREDENTIALS_FILE", "/nonexistent/service-account.json")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Fatal("Load() error = nil, want error for missing credentials file")
		}
	})
}
