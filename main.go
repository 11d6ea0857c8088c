package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/BabakBar/fmthook/internal/cmd"
)

func main() {
	os.Exit(actualMain())
}

func actualMain() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.Execute(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
