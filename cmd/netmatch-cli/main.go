// Command netmatch-cli runs the matchers against the upstream API from a terminal
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"netmatch/internal/core/fuzzy"
	"netmatch/internal/core/version"
	"netmatch/internal/platform/logger"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newApp builds the cli; out receives every command's output
func newApp(out io.Writer) *cli.App {
	typeFlag := func(def, usage string) *cli.StringFlag {
		return &cli.StringFlag{Name: "type", Aliases: []string{"t"}, Value: def, Usage: usage}
	}

	return &cli.App{
		Name:    "netmatch-cli",
		Usage:   "Find affiliate networks, groups and traffic sources by fuzzy name",
		Version: version.Info().Version,
		Writer:  out,
		Before: func(c *cli.Context) error {
			logger.Init(logger.Options{Level: c.String("log-level"), Format: "console", Writer: os.Stderr})
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Base URL of the upstream tracker API",
				EnvVars:  []string{"SERVICE_UPSTREAM_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "key",
				Usage:   "Upstream API key",
				EnvVars: []string{"SERVICE_UPSTREAM_KEY"},
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "Per request timeout",
				Value:   10 * time.Second,
				EnvVars: []string{"SERVICE_UPSTREAM_TIMEOUT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level for diagnostics written to stderr",
				Value:   "warn",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.IntFlag{
				Name:    "threshold",
				Usage:   "Minimum similarity for the network command",
				Value:   fuzzy.DefaultThreshold,
				EnvVars: []string{"CORE_API_MATCH_THRESHOLD"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "network",
				Usage:     "Best matching affiliate network",
				ArgsUsage: "<name>",
				Action:    networkCommand,
			},
			{
				Name:      "groups",
				Usage:     "Groups whose name matches a substring",
				ArgsUsage: "<substring>",
				Flags:     []cli.Flag{typeFlag("campaigns", "Group type")},
				Action:    groupsCommand,
			},
			{
				Name:      "sources",
				Usage:     "Traffic sources whose name matches a substring",
				ArgsUsage: "<substring>",
				Flags:     []cli.Flag{typeFlag("", "Traffic source type, every type when empty")},
				Action:    sourcesCommand,
			},
			{
				Name:      "search",
				Usage:     "Groups and traffic sources matching a substring, fetched concurrently",
				ArgsUsage: "<substring>",
				Action:    searchCommand,
			},
		},
	}
}
