package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:",squash"`
	Line   LineConfig   `mapstructure:",squash"`
	OpenAI OpenAIConfig `mapstructure:",squash"`
}

type ServerConfig struct {
	Port          string `mapstructure:"PORT"`
	StoreInfoPath string `mapstructure:"STORE_INFO_PATH"`
}

type LineConfig struct {
	ChannelSecret string `mapstructure:"CHANNEL_SECRET"`
	AccessToken   string `mapstructure:"CHANNEL_ACCESS_TOKEN"`
}

type OpenAIConfig struct {
	APIKey string `mapstructure:"OPENAI_API_KEY"`
	Model  string `mapstructure:"OPENAI_MODEL"`
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	for _, key := range []string{
		"PORT",
		"STORE_INFO_PATH",
		"CHANNEL_SECRET",
		"CHANNEL_ACCESS_TOKEN",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "3000"
	}
	if cfg.Server.StoreInfoPath == "" {
		cfg.Server.StoreInfoPath = "storeInfo.json"
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = "gpt-3.5-turbo"
	}

	// Secrets must be present up front: the signature check and both outbound
	// clients fail closed, so a half-configured process is useless.
	if cfg.Line.ChannelSecret == "" {
		return nil, errors.New("CHANNEL_SECRET is not set")
	}
	if cfg.Line.AccessToken == "" {
		return nil, errors.New("CHANNEL_ACCESS_TOKEN is not set")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, errors.New("OPENAI_API_KEY is not set")
	}

	return cfg, nil
}
