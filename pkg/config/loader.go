package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/app/configs")

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow common env vars without APP_ prefix for Docker/VM deploys
	viper.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	viper.BindEnv("app.environment", "APP_ENVIRONMENT")
	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("tracing.jaeger_endpoint", "JAEGER_ENDPOINT", "APP_TRACING_JAEGER_ENDPOINT")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine, defaults plus env vars carry the app
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("app.name", "drivelink")
	viper.SetDefault("app.version", "v1.0.0")
	viper.SetDefault("app.environment", "development")

	viper.SetDefault("http.port", 5000)
	viper.SetDefault("http.read_timeout", 10*time.Second)
	viper.SetDefault("http.write_timeout", 10*time.Second)
	viper.SetDefault("http.idle_timeout", time.Minute)

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")

	viper.SetDefault("cors.enabled", true)
	viper.SetDefault("circuit_breaker.enabled", true)
	viper.SetDefault("tracing.enabled", false)

	// Assistant thinking window: 1s floor plus up to 1.5s of jitter.
	viper.SetDefault("assistant.min_delay", time.Second)
	viper.SetDefault("assistant.max_delay", 2500*time.Millisecond)

	viper.SetDefault("seed.demo", true)
}
