package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "chroniclectl",
		Short: "CLI client for the Celestial Chronicles REST API",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", "http://localhost:8080", "Chronicles service base URL")

	// events subcommand
	eventsCmd := &cobra.Command{
		Use:   "events",
		Short: "List historical space events for a calendar date",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			day, _ := cmd.Flags().GetInt("day")
			return runEvents(apiFlag, month, day, os.Stdout)
		},
	}
	eventsCmd.Flags().IntP("month", "m", 0, "Month (1-12, required)")
	eventsCmd.Flags().IntP("day", "d", 0, "Day (1-31, required)")
	_ = eventsCmd.MarkFlagRequired("month")
	_ = eventsCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(eventsCmd)

	// upcoming subcommand
	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming celestial events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpcoming(apiFlag, os.Stdout)
		},
	}
	rootCmd.AddCommand(upcomingCmd)

	// progress subcommand group
	progressCmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect and update user progress",
	}
	progressCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the progress aggregate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgressShow(apiFlag, os.Stdout)
		},
	})
	progressCmd.AddCommand(&cobra.Command{
		Use:   "view-event <eventId>",
		Short: "Record an event view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runViewEvent(apiFlag, args[0], os.Stdout)
		},
	})
	progressCmd.AddCommand(&cobra.Command{
		Use:   "complete-collection <collectionId>",
		Short: "Record a completed collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompleteCollection(apiFlag, args[0], os.Stdout)
		},
	})
	rootCmd.AddCommand(progressCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
