package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"docdash/internal/cli"
	"docdash/internal/config"
)

func main() {
	cfg := config.Load()

	root := cli.NewRootCommand(cli.ConfigOpener(cfg), cfg.Location())
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
