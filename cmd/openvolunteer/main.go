package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/libdough/openvolunteer/internal/interfaces/cli/maintenance"
	"github.com/libdough/openvolunteer/internal/interfaces/cli/migrate"
	"github.com/libdough/openvolunteer/internal/interfaces/cli/seed"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "openvolunteer",
		Short: "OpenVolunteer - volunteer management backend",
		Long:  `OpenVolunteer manages organizations, people, events with shifts, and the ticket workflows that drive volunteer recruitment and reconfirmation.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		seed.NewCommand(),
		maintenance.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
