package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, loaded from app.env and
// overridable through environment variables of the same name.
type Config struct {
	DatasetPath       string        `mapstructure:"DATASET_PATH"`
	ServerAddress     string        `mapstructure:"SERVER_ADDRESS"`
	GeocoderBaseURL   string        `mapstructure:"GEOCODER_BASE_URL"`
	GeocoderUserAgent string        `mapstructure:"GEOCODER_USER_AGENT"`
	GeocoderTimeout   time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
	DefaultNearestK   int           `mapstructure:"DEFAULT_NEAREST_K"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
