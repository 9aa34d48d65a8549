// Package conf contains utility functions for loading and parsing configuration files.
package conf

import (
	"os"

	"github.com/spf13/viper"
)

// RedisConf describes a default configuration for redis.
type RedisConf struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	Database   int    `mapstructure:"database"`
	DisableTLS bool   `mapstructure:"disable_tls"`
}

// MixpanelConf describes the project a tracker reports to.
type MixpanelConf struct {
	Token string `mapstructure:"token"`
	URL   string `mapstructure:"url"`
}

// TrackerConf describes how a tracker is set up on startup.
type TrackerConf struct {
	Platform          string                 `mapstructure:"platform"`
	OptOutDefault     bool                   `mapstructure:"opt_out_default"`
	Logging           bool                   `mapstructure:"logging"`
	FlushOnBackground bool                   `mapstructure:"flush_on_background"`
	UseIPGeolocation  bool                   `mapstructure:"use_ip_geolocation"`
	SuperProperties   map[string]interface{} `mapstructure:"super_properties"`
}

// AddrConf describes an address to listen on.
type AddrConf struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Load opens and parses a configuration file.
func Load(file string, conf interface{}) error {
	_, err := os.Stat(file)
	if err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("toml")

	err = v.ReadInConfig()
	if err != nil {
		return err
	}

	err = v.Unmarshal(conf)
	if err != nil {
		return err
	}

	return nil
}
