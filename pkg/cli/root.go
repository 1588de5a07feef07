/*
Copyright © 2026 Buildstamp Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/buildstamp/buildstamp/pkg/logging"
)

const name = "buildstamp"

var (
	// overridden during build with ldflags
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var logLevelFlag = &cli.StringFlag{
	Name:    "log-level",
	Usage:   "log level (debug, info, warn, error)",
	Sources: cli.EnvVars("BUILDSTAMP_LOG_LEVEL", logging.LevelEnvVar),
	Value:   "info",
}

// Run executes the buildstamp CLI with the given arguments.
func Run(ctx context.Context, args []string) error {
	root := &cli.Command{
		Name:    name,
		Usage:   "Collect build metadata and write it to a properties file",
		Version: version,
		Flags: []cli.Flag{
			logLevelFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			writeCmd(),
			versionCmd(),
		},
	}

	return root.Run(ctx, args)
}
