package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var super = &cobra.Command{
	Use:   "super",
	Short: "manages super properties sent with every event",
}

var superRegister = &cobra.Command{
	Use:   "register [properties]",
	Short: "registers super properties from a json object",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuperRegister,
}

var superList = &cobra.Command{
	Use:   "list",
	Short: "prints the current super properties",
	RunE:  runSuperList,
}

var superClear = &cobra.Command{
	Use:   "clear [name]",
	Short: "clears all super properties, or only the named one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSuperClear,
}

var registerOnce bool

func init() {
	superRegister.Flags().BoolVar(&registerOnce, "once", false, "keep values that are already registered")

	super.AddCommand(superRegister)
	super.AddCommand(superList)
	super.AddCommand(superClear)
}

func runSuperRegister(cmd *cobra.Command, args []string) error {
	props, err := parseProperties(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if registerOnce {
		return a.Tracker.RegisterSuperPropertiesOnce(ctx, props)
	}

	return a.Tracker.RegisterSuperProperties(ctx, props)
}

func runSuperList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	props, err := a.Tracker.SuperProperties(ctx)
	if err != nil {
		return err
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(props)
}

func runSuperClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return a.Tracker.UnregisterSuperProperty(ctx, args[0])
	}

	return a.Tracker.ClearSuperProperties(ctx)
}
