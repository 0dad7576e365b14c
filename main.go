package main

import (
	"os"

	"github.com/spf13/cobra"

	"hotel-admin/commands"
	"hotel-admin/config"
)

// @title Hotel Reservation Admin Gateway API
// @version 1.0
// @description Admin gateway over the hotel reservation REST backend.
func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "hotel-admin",
		Short: "Administration gateway for the hotel reservation backend",
	}

	rootCmd.AddCommand(
		commands.ServeCmd(),
		commands.ListCmd(),
		commands.CreateCmd(),
		commands.DeleteCmd(),
		commands.SearchCmd(),
		commands.StatsCmd(),
		commands.ConvertCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
