package main

import (
	"os"

	"github.com/spf13/cobra"

	"codecampus/internal/interfaces/cli/migrate"
	"codecampus/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "codecampus",
		Short: "CodeCampus - student coding portfolio tracker",
		Long:  `CodeCampus aggregates problem-solving statistics from coding platforms and serves a campus-wide leaderboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
