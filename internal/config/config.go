package config

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"PORT"`
	DatabasePath string `mapstructure:"KOALA_DB_PATH"`
	Salt         string `mapstructure:"KOALA_SALT"`
	LogPath      string `mapstructure:"KOALA_LOG_PATH"`
	LogLevel     string `mapstructure:"KOALA_LOG_LEVEL"`
}

var ErrMissingSalt = errors.New("KOALA_SALT must be set")

func LoadConfig() (config Config, err error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("KOALA_DB_PATH", "./koala.db")
	viper.SetDefault("KOALA_LOG_PATH", "./koala.log")
	viper.SetDefault("KOALA_LOG_LEVEL", "WARN")
	viper.SetDefault("KOALA_SALT", "")

	// Optional koala.env file in the working directory; env vars win.
	viper.SetConfigName("koala")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	if err = viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return
		}
		err = nil
	}

	viper.AutomaticEnv()

	if err = viper.Unmarshal(&config); err != nil {
		return
	}

	// A predictable salt would let anyone mint valid keys offline.
	if config.Salt == "" {
		err = ErrMissingSalt
	}

	return
}
