package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-medical-seeder/cmd/bootstrap"
	"go-medical-seeder/internal/delivery/cli"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(bootstrap.New)
	if err := root.ExecuteContext(ctx); err != nil {
		code := 1
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		logrus.Errorf("%v", err)
		stop()
		os.Exit(code)
	}
}
