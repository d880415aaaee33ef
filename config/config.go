package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Google    GoogleConfig
	Translate TranslateConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GoogleConfig holds Cloud Vision and Gemini configuration
type GoogleConfig struct {
	CredentialsFile string        `mapstructure:"credentials_file"`
	ProjectID       string        `mapstructure:"project_id"`
	APIKey          string        `mapstructure:"api_key"`
	VisionBaseURL   string        `mapstructure:"vision_base_url"`
	GeminiBaseURL   string        `mapstructure:"gemini_base_url"`
	GeminiModel     string        `mapstructure:"gemini_model"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

// TranslateConfig holds the LibreTranslate endpoint configuration
type TranslateConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/labelscan/")

	// Environment variable settings
	v.SetEnvPrefix("LABELSCAN")
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Honor the conventional credentials variable when no explicit path is set
	if config.Google.CredentialsFile == "" {
		config.Google.CredentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://127.0.0.1:5501"})

	// Google API defaults. Empty defaults register the keys so the
	// corresponding environment variables are picked up on Unmarshal.
	v.SetDefault("google.credentials_file", "")
	v.SetDefault("google.project_id", "")
	v.SetDefault("google.api_key", "")
	v.SetDefault("google.vision_base_url", "https://vision.googleapis.com")
	v.SetDefault("google.gemini_base_url", "https://generativelanguage.googleapis.com")
	v.SetDefault("google.gemini_model", "gemini-2.0-flash-exp")
	v.SetDefault("google.timeout", "60s")

	// Translation defaults
	v.SetDefault("translate.base_url", "https://libretranslate.com")
	v.SetDefault("translate.timeout", "30s")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Google.GeminiModel == "" {
		return fmt.Errorf("Gemini model is required (set LABELSCAN_GOOGLE_GEMINI_MODEL)")
	}

	if config.Google.CredentialsFile != "" {
		if _, err := os.Stat(config.Google.CredentialsFile); err != nil {
			return fmt.Errorf("credentials file %q is not readable: %w", config.Google.CredentialsFile, err)
		}
	}

	// No credentials file and no API key is allowed: ambient default
	// credentials are attempted at startup.
	return nil
}
