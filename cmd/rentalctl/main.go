package main

import (
	"fmt"
	"os"

	"rentalhub/internal/version"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rentalctl",
		Short:         "Operational tasks for the rentalhub API",
		Version:       version.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(indexesCmd())
	rootCmd.AddCommand(promoteCmd())
	rootCmd.AddCommand(tokenCmd())

	return rootCmd
}
