// Package app builds the tracker shared by commands and the http endpoint.
package app

import (
	"context"

	"github.com/soapboxsocial/tracker/pkg/conf"
	"github.com/soapboxsocial/tracker/pkg/platform"
	"github.com/soapboxsocial/tracker/pkg/tracking"
)

// Config is the configuration file layout.
type Config struct {
	Mixpanel conf.MixpanelConf `mapstructure:"mixpanel"`
	Redis    conf.RedisConf    `mapstructure:"redis"`
	Tracker  conf.TrackerConf  `mapstructure:"tracker"`
	HTTP     conf.AddrConf     `mapstructure:"http"`
}

// App holds the single initialized Tracker of a process.
type App struct {
	Config  *Config
	Tracker *tracking.Tracker
}

// New creates the Tracker, initializes it and applies the configured settings.
func New(ctx context.Context, config *Config, delegate tracking.Delegate) (*App, error) {
	tracker, err := tracking.New(
		config.Mixpanel.Token,
		delegate,
		tracking.WithPlatform(resolvePlatform(config.Tracker.Platform)),
	)

	if err != nil {
		return nil, err
	}

	err = tracker.Init(ctx, config.Tracker.OptOutDefault, config.Tracker.SuperProperties)
	if err != nil {
		return nil, err
	}

	if config.Mixpanel.URL != "" {
		err = tracker.SetServerURL(ctx, config.Mixpanel.URL)
		if err != nil {
			return nil, err
		}
	}

	err = tracker.SetLoggingEnabled(ctx, config.Tracker.Logging)
	if err != nil {
		return nil, err
	}

	err = tracker.SetFlushOnBackground(ctx, config.Tracker.FlushOnBackground)
	if err != nil {
		return nil, err
	}

	err = tracker.SetUseIPAddressForGeolocation(ctx, config.Tracker.UseIPGeolocation)
	if err != nil {
		return nil, err
	}

	return &App{Config: config, Tracker: tracker}, nil
}

func resolvePlatform(id string) platform.Platform {
	if id == "" {
		return platform.Detect(platform.Runtime{})
	}

	return platform.Detect(platform.Static(id))
}
