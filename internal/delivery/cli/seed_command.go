package cli

import (
	"fmt"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/repository"
	"go-medical-seeder/internal/seed"

	"github.com/spf13/cobra"
)

func NewSeedCommand(newApp AppFactory) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the sample dataset, skipping records that already exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if dryRun {
				app.UseStore(repository.NewMemoryStore())
				app.Log.Info("Dry run: seeding an in-memory store")
			} else if err := app.Connect(ctx); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			lock, err := app.RunLock(ctx)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			release, err := lock.Acquire(ctx)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}
			defer release()

			seedUsecase, err := app.SeedUsecase(seed.NewRandomPolicy())
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			result, err := seedUsecase.Run(ctx)
			if err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, kind := range entity.AuditedKinds {
				if n := result.Created[kind]; n > 0 {
					fmt.Fprintf(out, "%s created: %d\n", kind.Label(), n)
				}
			}
			fmt.Fprintf(out, "Seeding completed successfully (%d new records).\n", result.TotalCreated())
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "seed an in-memory store instead of the configured database")
	return cmd
}
