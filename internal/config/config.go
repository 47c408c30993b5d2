package config

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

type Config struct {
	// base URL of the device, e.g. "http://192.168.1.61"
	Host string `json:"host"`

	PollIntervalSeconds int    `json:"pollIntervalSeconds"`
	DatabasePath        string `json:"databasePath"`

	// listen address for the daemon's /events stream
	EventsAddr string `json:"eventsAddr"`

	// "lat,lng" fallback used when the device has no location configured
	GeoLocation string `json:"geoLocation"`
}

func InitialiseConfig() {
	viper.SetConfigName("config")               // name of config file (without extension)
	viper.SetConfigType("json")                 // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/dingz/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/dingz/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                    // optionally look for config in the working directory
	err := viper.ReadInConfig()                 // Find and read the config file
	if err != nil {                             // Handle errors reading the config file
		log.Error(err)
		panic(fmt.Errorf("fatal error config file: %w", err))
	}
}

func ReadConfig() *Config {

	InitialiseConfig()

	config := Config{
		PollIntervalSeconds: 60,
		DatabasePath:        "dingz.db",
		EventsAddr:          ":8707",
	}
	if err := viper.Unmarshal(&config); err != nil {
		log.Error(err)
		panic(fmt.Errorf("fatal error reading config values: %w", err))
	}

	return &config
}
