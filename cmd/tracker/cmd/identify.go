package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var identify = &cobra.Command{
	Use:   "identify [distinct id]",
	Short: "identifies the current user, prints the current distinct id without arguments",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIdentify,
}

var alias = &cobra.Command{
	Use:   "alias [alias] [distinct id]",
	Short: "creates an alias for a distinct id",
	Args:  cobra.ExactArgs(2),
	RunE:  runAlias,
}

func runIdentify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return a.Tracker.Identify(ctx, args[0])
	}

	id, err := a.Tracker.DistinctID(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}

func runAlias(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	return a.Tracker.Alias(ctx, args[0], args[1])
}
