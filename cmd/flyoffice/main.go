package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/flyoffice/directory/internal/interfaces/cli/migrate"
	"github.com/flyoffice/directory/internal/interfaces/cli/seed"
	"github.com/flyoffice/directory/internal/interfaces/cli/server"
	"github.com/flyoffice/directory/internal/interfaces/cli/token"
	"github.com/flyoffice/directory/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "flyoffice",
		Short:   "FlyOffice - airline office directory",
		Long:    `FlyOffice serves the airline and office directory and the staff inquiry desk.`,
		Version: version.Version,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
