package main

import (
	"os"

	"github.com/rapidmidiex/rmxtheory"
	"github.com/rapidmidiex/rmxtheory/config"
)

func main() {
	cfg := config.Load()
	if err := rmxtheory.NewRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
