package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Debug               bool
	OpenAIApiKey        string
	OpenAILanguageModel string
	DbConnectionString  string
}

var config *Config

func GetConfig() *Config {
	if config != nil {
		return config
	}
	config = &Config{}

	// Debug mode
	debug := os.Getenv("ESTATE_DEBUG")
	if strings.ToLower(debug) == "true" || debug == "1" {
		config.Debug = true
	}
	if config.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Database connection string
	config.DbConnectionString = os.Getenv("ESTATE_DB_STRING")
	if len(config.DbConnectionString) == 0 {
		slog.Error("Database connection string is not set in the environment (ESTATE_DB_STRING)")
		os.Exit(1)
	}

	// Open AI API key
	config.OpenAIApiKey = os.Getenv("ESTATE_OPENAI_API_KEY")
	if len(config.OpenAIApiKey) == 0 {
		slog.Error("Open AI API key not found in the environment (ESTATE_OPENAI_API_KEY)")
		os.Exit(1)
	}

	// Copywriter LLM
	config.OpenAILanguageModel = os.Getenv("ESTATE_OPENAI_LANGUAGE_MODEL")
	if len(config.OpenAILanguageModel) == 0 {
		slog.Error("Copywriter language model not found in the environment (ESTATE_OPENAI_LANGUAGE_MODEL)")
		os.Exit(1)
	}

	slog.Debug("Configuration parameters",
		"ESTATE_DEBUG", config.Debug,
		"ESTATE_DB_STRING", config.DbConnectionString,
		"ESTATE_OPENAI_API_KEY", config.OpenAIApiKey,
		"ESTATE_OPENAI_LANGUAGE_MODEL", config.OpenAILanguageModel)

	return config
}
