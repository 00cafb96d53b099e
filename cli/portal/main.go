package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/medivac/portal/cli"
	_ "github.com/viant/scy/kms/blowfish"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	if err := cli.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
