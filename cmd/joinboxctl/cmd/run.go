package cmd

import (
	"cosmossdk.io/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openalpha/joinbox/cmd/joinboxctl/workshop"
)

// NewRunCmd returns the command that loads a fixture and prints its
// firings.
func NewRunCmd(logger log.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [fixture.json]",
		Short: "Run a workshop fault/fix fixture through a mailbox and print its firings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.New()
			runLogger := logger.With("run_id", runID.String())

			events, err := workshop.LoadFixture(args[0])
			if err != nil {
				return err
			}

			firings, err := workshop.Run(runLogger, events)
			if err != nil {
				return err
			}

			for _, f := range firings {
				cmd.Printf("case=%d ids=%v\n", f.Case, f.Messages)
			}
			return nil
		},
	}
	return cmd
}
