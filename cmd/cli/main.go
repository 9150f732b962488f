package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/de-tools/sales-atlas/pkg/runtime/terminal"
	"github.com/de-tools/sales-atlas/pkg/services/agent"
	"github.com/de-tools/sales-atlas/pkg/services/config"
	"github.com/de-tools/sales-atlas/pkg/services/engine"
	"github.com/de-tools/sales-atlas/pkg/store/csvstore"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("SALES_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var source csvstore.Source
	if cfg.Dataset.Path != "" {
		source = csvstore.FileSource{Path: cfg.Dataset.Path}
	} else {
		source = csvstore.HTTPSource{URL: cfg.Dataset.URL}
	}

	cli := terminal.NewCLI(terminal.Options{
		Service: agent.NewProcessor(engine.NewExecutor(csvstore.NewStore(source))),
		Output:  os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
