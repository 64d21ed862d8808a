package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Seeds
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Seeds struct {
		Dir string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("seeds_dir", DefaultSeedsDir)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Seeds: Seeds{
			Dir: v.GetString("SEEDS_DIR"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
