package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort  string `mapstructure:"SERVER_PORT"`
	DataDir     string `mapstructure:"DATA_DIR"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`
	CorsOrigins string `mapstructure:"CORS_ORIGINS"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":3001")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000, http://localhost:3001")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
