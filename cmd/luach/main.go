// Command luach converts dates between the Hebrew and Gregorian calendars and
// manages the year table used by the API server.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout).Run(context.Background(), os.Args); err != nil {
		slog.Error("luach error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "luach",
		Usage: "Hebrew/Gregorian calendar conversion",
		Commands: []*cli.Command{
			{
				Name:      "g2h",
				Usage:     "Convert a Gregorian date to the Hebrew calendar",
				ArgsUsage: "YYYY-MM-DD",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return gregorianToHebrew(out, cmd.Args().Slice())
				},
			},
			{
				Name:      "h2g",
				Usage:     "Convert a Hebrew date to the Gregorian calendar",
				ArgsUsage: "YEAR MONTH DAY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hebrewToGregorian(out, cmd.Args().Slice())
				},
			},
			{
				Name:      "abs",
				Usage:     "Show the dates of an absolute day number (1 = January 1, year 1)",
				ArgsUsage: "DAY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return absoluteDay(out, cmd.Args().Slice())
				},
			},
			{
				Name:      "year",
				Usage:     "Show the structure of a Hebrew year",
				ArgsUsage: "YEAR",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return showYear(out, cmd.Args().Slice())
				},
			},
			{
				Name:      "seed",
				Usage:     "Fill the year table with a span of years",
				ArgsUsage: "FROM TO",
				Flags:     []cli.Flag{dbFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return seedYears(ctx, out, cmd.String("db"), cmd.Args().Slice())
				},
			},
			{
				Name:      "export",
				Usage:     "Write a span of years from the year table as YAML or JSON",
				ArgsUsage: "FROM TO",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format: yaml or json",
						Value:   "yaml",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return exportYears(ctx, out, cmd.String("db"), cmd.String("format"), cmd.Args().Slice())
				},
			},
		},
	}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "db",
		Usage:   "Path to the SQLite database",
		Value:   "./data/luach.db",
		Sources: cli.EnvVars("DATABASE_PATH"),
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}
