package cmd

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/soapboxsocial/tracker/pkg/app"
	"github.com/soapboxsocial/tracker/pkg/conf"
	"github.com/soapboxsocial/tracker/pkg/redis"
	"github.com/soapboxsocial/tracker/pkg/tracking"
	"github.com/soapboxsocial/tracker/pkg/tracking/backends"
	"github.com/soapboxsocial/tracker/pkg/tracking/delegates"
)

var (
	rootCmd = &cobra.Command{
		Use:   "tracker",
		Short: "Soapbox Analytics Tracker",
		Long:  "",
		PersistentPreRun: func(*cobra.Command, []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		},
		SilenceUsage: true,
	}
)

var file string

func init() {
	rootCmd.PersistentFlags().StringVarP(&file, "config", "c", "config.toml", "config file")

	rootCmd.AddCommand(track)
	rootCmd.AddCommand(identify)
	rootCmd.AddCommand(alias)
	rootCmd.AddCommand(people)
	rootCmd.AddCommand(super)
	rootCmd.AddCommand(serve)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func setup(ctx context.Context) (*app.App, error) {
	config := &app.Config{}
	err := conf.Load(file, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	rdb := redis.NewRedis(config.Redis)

	delegate := delegates.NewMixpanelDelegate(
		backends.NewStateBackend(rdb),
		delegates.WithLogger(log.Logger),
	)

	a, err := app.New(ctx, config, delegate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize tracker")
	}

	return a, nil
}

// parseProperties decodes a json object passed on the command line.
func parseProperties(raw string) (tracking.PropertyBag, error) {
	if raw == "" {
		return nil, nil
	}

	var props tracking.PropertyBag
	err := json.Unmarshal([]byte(raw), &props)
	if err != nil {
		return nil, errors.Wrap(err, "properties must be a json object")
	}

	return props, nil
}
