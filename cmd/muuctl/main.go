package main

import (
	"context"
	"fmt"
	"os"

	"github.com/muusmart/muusmart/internal/cli/app"
)

func main() {
	cfg := app.LoadConfig()

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "muuctl: %v\n", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "muuctl: %v\n", err)
		os.Exit(1)
	}
}
