package cli

import (
	"context"

	"go-medical-seeder/cmd/bootstrap"

	"github.com/spf13/cobra"
)

// ExitError carries the process exit code a command wants
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// AppFactory builds the application for a command run
type AppFactory func() (*bootstrap.App, error)

// NewRootCommand wires the seed, verify and env commands
func NewRootCommand(newApp AppFactory) *cobra.Command {
	root := &cobra.Command{
		Use:           "seeder",
		Short:         "Seed and verify the healthcare booking sample dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewSeedCommand(newApp),
		NewVerifyCommand(newApp),
		NewEnvCommand(newApp),
	)
	return root
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
