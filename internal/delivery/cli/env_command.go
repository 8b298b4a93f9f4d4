package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewEnvCommand reports which settings are present without printing secrets
func NewEnvCommand(newApp AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Check that the environment is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			cfg := app.Config
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Environment check")
			fmt.Fprintf(out, "APP_ENV: %s\n", cfg.App.Env)
			fmt.Fprintf(out, "DATABASE_URL: %s\n", presence(cfg.DB.URL != "" || cfg.DB.Host != ""))
			fmt.Fprintf(out, "DB_DRIVER: %s\n", cfg.DB.Driver)
			fmt.Fprintf(out, "REDIS_HOST: %s\n", presence(cfg.Redis.Enabled()))
			fmt.Fprintf(out, "REPORT_S3_BUCKET: %s\n", presence(cfg.Report.S3Bucket != ""))
			fmt.Fprintf(out, "REPORT_PATH: %s\n", cfg.Report.Path)
			return nil
		},
	}
}

func presence(ok bool) string {
	if ok {
		return "Found"
	}
	return "Missing"
}
