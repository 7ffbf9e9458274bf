package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Env   string
	API   APIConfig
	Live  LiveConfig
	Token TokenConfig
}

type APIConfig struct {
	BaseURL string
}

// LiveConfig selects and configures the activation-event source. Source is
// "websocket" (push gateway) or "kafka" (direct event-topic consumer).
type LiveConfig struct {
	Source       string
	SocketURL    string
	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroup   string
}

type TokenConfig struct {
	// Path overrides the default token slot location. Empty means the
	// user config dir.
	Path string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("CONSOLE_ENV", "development")
	viper.SetDefault("API_BASE_URL", "http://localhost:3000")
	viper.SetDefault("LIVE_SOURCE", "websocket")
	viper.SetDefault("SOCKET_URL", "ws://localhost:3001/events")
	viper.SetDefault("KAFKA_BROKERS", "localhost:9092")
	viper.SetDefault("KAFKA_TOPIC", "shop-events")
	viper.SetDefault("KAFKA_GROUP", "shop-console")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Env: viper.GetString("CONSOLE_ENV"),
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Live: LiveConfig{
			Source:       viper.GetString("LIVE_SOURCE"),
			SocketURL:    viper.GetString("SOCKET_URL"),
			KafkaBrokers: strings.Split(viper.GetString("KAFKA_BROKERS"), ","),
			KafkaTopic:   viper.GetString("KAFKA_TOPIC"),
			KafkaGroup:   viper.GetString("KAFKA_GROUP"),
		},
		Token: TokenConfig{
			Path: viper.GetString("TOKEN_PATH"),
		},
	}
}
