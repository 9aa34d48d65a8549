package cmd

import (
	"github.com/spf13/cobra"
)

var track = &cobra.Command{
	Use:   "track [event]",
	Short: "tracks an event",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrack,
}

var (
	trackProperties string
	trackGroups     string
)

func init() {
	track.Flags().StringVarP(&trackProperties, "properties", "p", "", "event properties as a json object")
	track.Flags().StringVarP(&trackGroups, "groups", "g", "", "groups as a json object")
}

func runTrack(cmd *cobra.Command, args []string) error {
	props, err := parseProperties(trackProperties)
	if err != nil {
		return err
	}

	groups, err := parseProperties(trackGroups)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if groups != nil {
		return a.Tracker.TrackWithGroups(ctx, args[0], props, groups)
	}

	return a.Tracker.Track(ctx, args[0], props)
}
