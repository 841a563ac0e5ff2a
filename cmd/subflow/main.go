package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/subflow-io/subflow/internal/interfaces/cli/migrate"
	"github.com/subflow-io/subflow/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subflow",
		Short: "Subflow - subscription billing back office",
		Long:  `Subflow manages recurring subscriptions, invoices, discount codes and the product catalog behind them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
