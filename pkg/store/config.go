package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the preference store and carries the generative-text API
// key. Values come from .reunion.yaml, REUNION_* env vars, or defaults; the
// bare GEMINI_API_KEY env var is honored too.
type Config struct {
	BasePath string
	APIKey   string
	Verbose  bool
}

// LoadConfig reads configuration, never failing on a missing config file.
func LoadConfig() (*Config, error) {
	viper.SetDefault("path", "~/.reunion")
	viper.SetConfigName(".reunion") // .yaml is implicit
	viper.SetEnvPrefix("REUNION")
	viper.AutomaticEnv()

	if override := os.Getenv("REUNION_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	base, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand base path: %w", err)
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	return &Config{
		BasePath: base,
		APIKey:   apiKey,
		Verbose:  viper.GetBool("verbose"),
	}, nil
}
