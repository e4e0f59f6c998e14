package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `json:"server"`
	Channel ChannelConfig `json:"channel"`
	Report  ReportConfig  `json:"report"`
}

type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ChannelConfig holds the credentials and endpoint for the remote chat platform.
type ChannelConfig struct {
	BaseURL        string `json:"base_url"`
	AccessKey      string `json:"access_key"`
	AccessSecret   string `json:"access_secret"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// ReportConfig tunes the aggregation engine.
type ReportConfig struct {
	PageSize           int      `json:"page_size"`
	DefaultChatLimit   int      `json:"default_chat_limit"`
	MessageLimit       int      `json:"message_limit"`
	BoilerplatePhrases []string `json:"boilerplate_phrases"`
}

// defaultBoilerplate lists the platform's canned menu labels and bot prompts.
// Transcript text matching one of these exactly is suppressed. The list is
// data, not logic: override it via report.boilerplate_phrases in config.json.
var defaultBoilerplate = []string{
	"상담사 연결",
	"처음으로 돌아가기",
	"상담을 종료합니다",
	"무엇을 도와드릴까요?",
	"Back to menu",
	"Talk to an agent",
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	// Add config paths
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Check for user config directory
	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".chatlens"))
	}

	// Set defaults
	viper.SetDefault("server.port", 5010)
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("channel.base_url", "https://api.channel.io/open/v5")
	viper.SetDefault("channel.timeout_seconds", 30)
	viper.SetDefault("report.page_size", 25)
	viper.SetDefault("report.default_chat_limit", 50)
	viper.SetDefault("report.message_limit", 100)
	viper.SetDefault("report.boilerplate_phrases", defaultBoilerplate)

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Create default config
			cfg := createDefaultConfig()
			loadEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Load environment variables
	loadEnvOverrides(&cfg)

	return &cfg, nil
}

func createDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 5010,
		},
		Channel: ChannelConfig{
			BaseURL:        "https://api.channel.io/open/v5",
			TimeoutSeconds: 30,
		},
		Report: ReportConfig{
			PageSize:           25,
			DefaultChatLimit:   50,
			MessageLimit:       100,
			BoilerplatePhrases: defaultBoilerplate,
		},
	}
}

func loadEnvOverrides(cfg *Config) {
	// Override with environment variables
	if port := os.Getenv("CHATLENS_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}

	if host := os.Getenv("CHATLENS_HOST"); host != "" {
		cfg.Server.Host = host
	}

	// Remote platform overrides
	if baseURL := os.Getenv("CHANNEL_BASE_URL"); baseURL != "" {
		cfg.Channel.BaseURL = baseURL
	}
	if key := os.Getenv("CHANNEL_ACCESS_KEY"); key != "" {
		cfg.Channel.AccessKey = key
	}
	if secret := os.Getenv("CHANNEL_ACCESS_SECRET"); secret != "" {
		cfg.Channel.AccessSecret = secret
	}
}
