package config

import (
	"context"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type contextKey string

const configKey contextKey = "config"

// Config holds all application configuration
type Config struct {
	// Timeline appearance
	Timeline TimelineConfig `yaml:"timeline"`

	// Proxy server settings
	Server ServerConfig `yaml:"server"`

	// Third-party provider settings
	Providers ProviderConfig `yaml:"providers"`
}

type TimelineConfig struct {
	TrackHeight float64 `yaml:"track_height"`
	PxPerSecond float64 `yaml:"px_per_second"`
}

type ServerConfig struct {
	Port      int    `yaml:"port"`
	AssetsDir string `yaml:"assets_dir"`
}

type ProviderConfig struct {
	Pexels     PexelsConfig     `yaml:"pexels"`
	SFX        SFXConfig        `yaml:"sfx"`
	Storage    StorageConfig    `yaml:"storage"`
	Transcribe TranscribeConfig `yaml:"transcribe"`
}

type PexelsConfig struct {
	APIKey  string `yaml:"api_key" env:"PEXELS_API_KEY"`
	BaseURL string `yaml:"base_url"`
}

type SFXConfig struct {
	APIKey  string `yaml:"api_key" env:"SFX_API_KEY"`
	BaseURL string `yaml:"base_url"`
}

type StorageConfig struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key" env:"STORAGE_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"STORAGE_SECRET_KEY"`
	Endpoint  string `yaml:"endpoint"`
	ExpirySec int    `yaml:"expiry_sec"`
}

type TranscribeConfig struct {
	APIKey  string `yaml:"api_key" env:"TRANSCRIBE_API_KEY"`
	BaseURL string `yaml:"base_url"`
}

// Load reads configuration from file or returns defaults
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func defaultConfig() *Config {
	return &Config{
		Timeline: TimelineConfig{
			TrackHeight: 60,
			PxPerSecond: 40,
		},
		Server: ServerConfig{
			Port:      8787,
			AssetsDir: "./assets",
		},
		Providers: ProviderConfig{
			Pexels: PexelsConfig{
				BaseURL: "https://api.pexels.com",
			},
			SFX: SFXConfig{
				BaseURL: "https://api.elevenlabs.io/v1/sound-generation",
			},
			Storage: StorageConfig{
				Region:    "us-east-1",
				ExpirySec: 900,
			},
			Transcribe: TranscribeConfig{
				BaseURL: "https://api.openai.com/v1/audio/transcriptions",
			},
		},
	}
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		"./config.yml",
		filepath.Join(os.Getenv("HOME"), ".railcut", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// WithConfig stores config in context
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from context
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey).(*Config); ok {
		return cfg
	}
	return defaultConfig()
}
