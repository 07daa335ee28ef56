package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/recero-inc/recero/internal/interfaces/cli/migrate"
	"github.com/recero-inc/recero/internal/interfaces/cli/register"
	"github.com/recero-inc/recero/internal/interfaces/cli/settle"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "recero",
		Short: "Recero - merchant subscription and billing administration",
		Long:  `Recero manages merchant service subscriptions, billing orchestration and point accounts for the e-receipt platform.`,
	}

	rootCmd.AddCommand(
		migrate.NewCommand(),
		register.NewCommand(),
		settle.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
