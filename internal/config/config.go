package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	defaultModel  = "meta-llama/llama-4-maverick:free"
	defaultAPIURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultHost   = "127.0.0.1"
	defaultPort   = 8000
)

// Config holds the process-wide settings. It is built once at startup and
// passed down explicitly, never read from globals afterwards.
type Config struct {
	Model  string
	APIURL string
	APIKey string
	Host   string
	Port   int
}

// Load reads the configuration from the environment. It fails when the
// provider authorization token is missing so the process can refuse to
// start instead of rejecting every request later.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("MODEL_NAME", defaultModel)
	v.SetDefault("API_URL", defaultAPIURL)
	v.SetDefault("HOST", defaultHost)
	v.SetDefault("PORT", defaultPort)

	apiKey := v.GetString("API_KEY")
	if apiKey == "" {
		return Config{}, fmt.Errorf("authorization token is required: API_KEY is not set")
	}

	return Config{
		Model:  v.GetString("MODEL_NAME"),
		APIURL: v.GetString("API_URL"),
		APIKey: apiKey,
		Host:   v.GetString("HOST"),
		Port:   v.GetInt("PORT"),
	}, nil
}
