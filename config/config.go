package config

import (
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type GeocoderConfig struct {
	BaseURL     string        `mapstructure:"baseUrl"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Concurrency int           `mapstructure:"concurrency"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type OrderConfig struct {
	PhoneRegion string `mapstructure:"phoneRegion"`
	EventsTopic string `mapstructure:"eventsTopic"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Geocoder GeocoderConfig `mapstructure:"geocoder"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Order    OrderConfig    `mapstructure:"order"`
}

func LoadConfig() (Config, error) {
	return loadConfig("config")
}

func loadConfig(path string) (Config, error) {
	vp := viper.New()

	var config Config

	vp.SetConfigName("config")
	vp.SetConfigType("json")
	vp.AddConfigPath(path)

	vp.SetDefault("server.port", "8000")
	vp.SetDefault("geocoder.baseUrl", "https://geocode-maps.yandex.ru/1.x")
	vp.SetDefault("geocoder.timeout", "5s")
	vp.SetDefault("geocoder.concurrency", 4)
	vp.SetDefault("cache.ttl", "0s")
	vp.SetDefault("order.phoneRegion", "RU")
	vp.SetDefault("order.eventsTopic", "orders")

	err := vp.ReadInConfig()
	if err != nil {
		return Config{}, err
	}

	err = vp.Unmarshal(&config)
	if err != nil {
		return Config{}, err
	}

	return config, nil
}
