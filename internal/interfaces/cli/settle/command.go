// Package settle implements the scheduled settlement batch CLI.
package settle

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/recero-inc/recero/internal/interfaces/cli/runtime"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Dispatch pending billing records",
		Long:  `Run one settlement batch: every pending billing record is promoted and sent to the payment gateway.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "default", "Environment (debug, release)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	rt, err := runtime.New(env)
	if err != nil {
		return err
	}
	defer rt.Close()

	result, err := rt.Settle.Execute(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("\nSettlement batch finished:\n")
	fmt.Printf("  Dispatched: %d\n", result.Dispatched)
	fmt.Printf("  Approved:   %d\n", result.Approved)
	fmt.Printf("  Declined:   %d\n", result.Declined)

	return nil
}
