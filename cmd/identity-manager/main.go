package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Muhammadhammad24/Enterprise-identity-lifecycle/internal/cli"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		if !errors.Is(err, cli.ErrFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
