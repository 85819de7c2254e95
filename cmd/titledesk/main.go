package main

import (
	"os"

	"github.com/spf13/cobra"

	"titledesk/internal/interfaces/cli/migrate"
	"titledesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "titledesk",
		Short: "Titledesk - vehicle title batch preparation service",
		Long:  `Titledesk prepares vehicle title and registration tickets into county batches, with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
