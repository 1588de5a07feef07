/*
Copyright © 2026 Buildstamp Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/buildstamp/buildstamp/pkg/collector"
	"github.com/buildstamp/buildstamp/pkg/defaults"
	"github.com/buildstamp/buildstamp/pkg/errors"
	"github.com/buildstamp/buildstamp/pkg/project"
	"github.com/buildstamp/buildstamp/pkg/serializer"
	"github.com/buildstamp/buildstamp/pkg/stamper"
	"github.com/buildstamp/buildstamp/pkg/sysenv"
)

func writeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "write",
		EnableShellCompletion: true,
		Usage:                 "Write build metadata to a properties file",
		Description: `Collect build metadata into a single properties file:
  - build tool version and active profiles
  - artifact identity (id, group, version)
  - selected system properties (architecture, OS, runtime)
  - project and environment properties carrying the configured prefix

Output is one key=value line per property, sorted by key, so repeated runs
with identical inputs produce byte-identical files.

# Examples

Write target/classes/build-info.properties from ./project.yaml:
  buildstamp write

Custom descriptor and prefix:
  buildstamp write --project build/descriptor.yaml --prefix ci.

Augment the environment snapshot from dotenv files:
  buildstamp write --env-file .env --env-file .env.ci

Print to stdout instead of a file:
  buildstamp write --output -`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"p"},
				Usage:   "Path to the project descriptor (YAML)",
				Sources: cli.EnvVars("BUILDSTAMP_PROJECT"),
				Value:   "project.yaml",
			},
			&cli.StringFlag{
				Name:    "output-dir",
				Usage:   "Build-output directory (default: descriptor build.outputDir)",
				Sources: cli.EnvVars("BUILDSTAMP_OUTPUT_DIR"),
			},
			&cli.StringFlag{
				Name:  "file-name",
				Usage: "Properties file name under the output directory",
				Value: defaults.FileName,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Explicit target path, or - for stdout (overrides --output-dir/--file-name)",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Usage:   "Property key prefix",
				Sources: cli.EnvVars("BUILDSTAMP_PREFIX"),
				Value:   defaults.Prefix,
			},
			&cli.StringFlag{
				Name:    "tool-version",
				Usage:   "Build tool version to record (empty means lookup failure)",
				Sources: cli.EnvVars("BUILDSTAMP_TOOL_VERSION"),
			},
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Dotenv file merged into the environment snapshot (can be repeated)",
			},
			&cli.StringFlag{
				Name:    "metrics-url",
				Usage:   "Prometheus Pushgateway base URL for invocation metrics",
				Sources: cli.EnvVars("BUILDSTAMP_METRICS_URL"),
			},
			&cli.StringFlag{
				Name:  "metrics-job",
				Usage: "Job label for pushed metrics",
				Value: name,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			proj, err := project.Load(cmd.String("project"))
			if err != nil {
				return err
			}

			env := sysenv.FromEnviron(os.Environ())
			if files := cmd.StringSlice("env-file"); len(files) > 0 {
				fileEnv, err := sysenv.LoadDotenv(files...)
				if err != nil {
					return err
				}
				env = env.Merge(fileEnv)
			}

			factory := collector.NewDefaultFactory(
				collector.WithPrefix(cmd.String("prefix")),
				collector.WithVersionLookup(toolVersionLookup(cmd.String("tool-version"))),
			)

			s := &stamper.BuildStamper{
				Project:     proj,
				Environment: env,
				Factory:     factory,
				Serializer:  buildSerializer(cmd, proj),
			}

			outcome, err := s.Write(ctx)
			if err != nil {
				return err
			}
			slog.Info("write complete", "outcome", outcome.String())

			if url := cmd.String("metrics-url"); url != "" {
				if perr := stamper.PushMetrics(ctx, url, cmd.String("metrics-job")); perr != nil {
					// Metrics are advisory; a failed push never fails the build.
					slog.Warn("unable to push metrics", "error", perr.Error())
				}
			}
			return nil
		},
	}
}

// buildSerializer resolves the output destination from the flags, preferring
// an explicit --output path over the directory/name pair.
func buildSerializer(cmd *cli.Command, proj *project.Project) serializer.Serializer {
	if out := cmd.String("output"); out != "" {
		return serializer.NewFileWriterOrStdout(out)
	}

	dir := cmd.String("output-dir")
	if dir == "" {
		dir = proj.OutputDir()
	}
	return serializer.NewFileWriter(dir, cmd.String("file-name"))
}

// toolVersionLookup models the host tool's runtime-version lookup: it
// resolves the flag/env-provided value and fails when none is available.
func toolVersionLookup(value string) collector.VersionLookup {
	return func(ctx context.Context) (string, error) {
		if value == "" {
			return "", errors.New(errors.ErrCodeLookupFailure, "build tool version is not available")
		}
		return value, nil
	}
}
