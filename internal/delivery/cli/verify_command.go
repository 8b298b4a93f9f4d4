package cli

import (
	"errors"
	"fmt"

	"go-medical-seeder/internal/usecase"

	"github.com/spf13/cobra"
)

var errUnhealthy = errors.New("seeding verification did not pass")

func NewVerifyCommand(newApp AppFactory) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Count stored records per kind and write the verification report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			sinks, sinkErr := app.ReportSinks(ctx)
			if sinkErr != nil {
				app.Log.Warnf("Report upload disabled: %v", sinkErr)
			}

			out := cmd.OutOrStdout()
			if err := app.ConnectReadOnly(ctx); err != nil {
				report := usecase.FailedReport(err)
				fmt.Fprint(out, report.Transcript())
				_ = usecase.PersistReport(ctx, app.Log, report, sinks...)
				return &ExitError{Code: 1, Err: err}
			}

			verifyUsecase := usecase.NewVerifyUsecase(app.Store, app.Log, sinks...)
			report := verifyUsecase.Verify(ctx)
			fmt.Fprint(out, report.Transcript())

			if err := verifyUsecase.Persist(ctx, report); err != nil && strict {
				return &ExitError{Code: 1, Err: err}
			}

			if strict {
				if report.Err != nil {
					return &ExitError{Code: 1, Err: report.Err}
				}
				if !report.Healthy {
					return &ExitError{Code: 1, Err: errUnhealthy}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit 1 when a read fails or the judgement is unhealthy")
	return cmd
}
