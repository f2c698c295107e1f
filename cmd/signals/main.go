package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rxtech-lab/argo-signals/internal/config"
	"github.com/rxtech-lab/argo-signals/internal/version"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "signals",
		Usage:   "Detect technical and sentiment trading signals",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "scan",
				Usage: "Scan one or more symbols and print their signals",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to the YAML configuration. Defaults are used when omitted",
					},
					&cli.StringSliceFlag{
						Name:     "symbol",
						Aliases:  []string{"s"},
						Usage:    "Symbol to scan, repeatable (e.g. AMZN, BTCUSDT)",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print reports as JSON instead of tables",
					},
					&cli.StringFlag{
						Name:  "metrics-file",
						Usage: "Write Prometheus metrics in textfile format to this path",
					},
					&cli.StringFlag{
						Name:  "env-file",
						Usage: "File with SIGNALS_* secrets",
						Value: ".env",
					},
					&cli.StringFlag{
						Name:  "log-level",
						Usage: "Override the configured log level",
					},
					&cli.TimestampFlag{
						Name:  "as-of",
						Usage: "Evaluate bars up to `YYYY-MM-DD` instead of now",
						Config: cli.TimestampConfig{
							Layouts: []string{"2006-01-02", time.RFC3339},
						},
					},
				},
				Action: scanAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of the configuration file",
				Action: schemaAction,
			},
			{
				Name:  "version",
				Usage: "Print the build and configuration versions",
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "signals %s (config %s)\n", version.GetVersion(), version.ConfigVersion)
					return err
				},
			},
		},
	}
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, schema)

	return err
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
