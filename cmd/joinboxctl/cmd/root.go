// Package cmd holds joinboxctl's cobra command tree.
package cmd

import (
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the joinboxctl root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "joinboxctl",
		Short: "Drive a join-pattern mailbox from a fixture and print its firings",
	}
	root.AddCommand(NewRunCmd(log.NewLogger(os.Stderr)))
	return root
}
