package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type ServerConfig struct {
	HTTPPort    string        `mapstructure:"HTTPPort"`
	MetricsPort string        `mapstructure:"metricsPort"`
	Timeout     time.Duration `mapstructure:"HTTPTimeout"`
}

// FoursquareConfig carries everything the places client needs apart from the
// API key, which comes from the environment and is injected at construction.
type FoursquareConfig struct {
	BaseURL     string        `mapstructure:"baseURL"`
	SearchLimit int           `mapstructure:"searchLimit"`
	DetailLimit int           `mapstructure:"detailLimit"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type GeminiConfig struct {
	Model           string  `mapstructure:"model"`
	Temperature     float32 `mapstructure:"temperature"`
	MaxOutputTokens int32   `mapstructure:"maxOutputTokens"`
}

type DefaultsConfig struct {
	TimeAvailable int `mapstructure:"timeAvailable"`
	MaxDistance   int `mapstructure:"maxDistance"`
}

type Config struct {
	Mode      string       `mapstructure:"mode"`
	Server    ServerConfig `mapstructure:"server"`
	Providers struct {
		Foursquare FoursquareConfig `mapstructure:"foursquare"`
		Gemini     GeminiConfig     `mapstructure:"gemini"`
	} `mapstructure:"providers"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	// Add file-based config paths
	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// Try to load file-based config
	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	// Unmarshal the config into the Config struct
	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
