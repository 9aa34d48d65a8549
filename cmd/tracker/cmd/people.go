package cmd

import (
	"github.com/spf13/cobra"

	"github.com/soapboxsocial/tracker/pkg/tracking"
)

var people = &cobra.Command{
	Use:   "people",
	Short: "updates the profile of the identified user",
}

var peopleSet = &cobra.Command{
	Use:   "set [name] [value]",
	Short: "sets a profile property, or every property passed with --properties",
	Args:  cobra.MaximumNArgs(2),
	RunE:  runPeopleSet,
}

var peopleIncrement = &cobra.Command{
	Use:   "increment [name] [by]",
	Short: "increments a numeric profile property, by 1 when no amount is given",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runPeopleIncrement,
}

var peopleUnset = &cobra.Command{
	Use:   "unset [name]",
	Short: "removes a profile property",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleUnset,
}

var peopleCharge = &cobra.Command{
	Use:   "charge [amount]",
	Short: "tracks a charge against the profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runPeopleCharge,
}

var (
	peopleProperties string
	setOnce          bool
)

func init() {
	peopleSet.Flags().StringVarP(&peopleProperties, "properties", "p", "", "properties as a json object")
	peopleSet.Flags().BoolVar(&setOnce, "once", false, "only set properties that are not set yet")
	peopleCharge.Flags().StringVarP(&peopleProperties, "properties", "p", "", "charge properties as a json object")

	people.AddCommand(peopleSet)
	people.AddCommand(peopleIncrement)
	people.AddCommand(peopleUnset)
	people.AddCommand(peopleCharge)
}

func runPeopleSet(cmd *cobra.Command, args []string) error {
	in, err := propertyInput(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	if setOnce {
		return a.Tracker.People().SetOnce(ctx, in)
	}

	return a.Tracker.People().Set(ctx, in)
}

func runPeopleIncrement(cmd *cobra.Command, args []string) error {
	var by interface{}
	if len(args) == 2 {
		by = args[1]
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	return a.Tracker.People().Increment(ctx, tracking.Property(args[0], by))
}

func runPeopleUnset(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	return a.Tracker.People().Unset(ctx, args[0])
}

func runPeopleCharge(cmd *cobra.Command, args []string) error {
	props, err := parseProperties(peopleProperties)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	a, err := setup(ctx)
	if err != nil {
		return err
	}

	return a.Tracker.People().TrackCharge(ctx, args[0], props)
}

func propertyInput(args []string) (tracking.PropertyInput, error) {
	if peopleProperties != "" {
		props, err := parseProperties(peopleProperties)
		if err != nil {
			return tracking.PropertyInput{}, err
		}

		return tracking.Properties(props), nil
	}

	var name string
	var value interface{}
	if len(args) > 0 {
		name = args[0]
	}

	if len(args) > 1 {
		value = args[1]
	}

	return tracking.Property(name, value), nil
}
