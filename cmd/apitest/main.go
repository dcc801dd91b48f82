// Command apitest runs smoke checks against a running luach API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "apitest",
		Usage: "Check a running luach API against known calendar dates",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "Base URL of the API",
				Value: "http://localhost:8080",
			},
			&cli.StringFlag{
				Name:    "api-key",
				Usage:   "Admin API key; enables the admin checks",
				Sources: cli.EnvVars("API_KEY"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Print response details",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("apitest error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	baseURL := cmd.String("url")

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		return fmt.Errorf("cannot connect to %s, make sure the API server is running: %w", baseURL, err)
	}
	resp.Body.Close()

	runner := NewTestRunner(baseURL, cmd.String("api-key"), cmd.Bool("verbose"), os.Stdout)
	runner.Run()

	if runner.Failed() > 0 {
		return fmt.Errorf("%d check(s) failed", runner.Failed())
	}
	return nil
}
