package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/pricecook/internal/translator"
)

type rootFlags struct {
	manifestPath string
	logLevel     string
	indent       bool
}

// newRootCmd builds the pricecook command. It takes at most one argument, the
// directory holding the pricing files, which defaults to the current directory.
func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "pricecook [pricing-dir]",
		Short: "pricecook - cook legacy AWS pricing JSON into aws-costs.json",
		Long: `pricecook reads the legacy AWS pricing files (reserved and on-demand instances,
EBS and S3) from <pricing-dir> and writes one consolidated aws-costs.json
keyed by region and product into the same directory.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			logger, err := newLogger(cmd.ErrOrStderr(), flags.logLevel)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return err
			}

			opts, err := parseOptions(flags)
			if err != nil {
				logger.Error().Err(err).Msg("Invalid configuration")
				return err
			}

			t, err := translator.New(opts, logger)
			if err != nil {
				logger.Error().Err(err).Msg("Invalid configuration")
				return err
			}

			logger.Info().Str("dir", dir).Msg("Cooking pricing files")
			if _, err := t.Run(cmd.Context(), dir); err != nil {
				logger.Error().Err(err).Msg("Failed to cook pricing files")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.manifestPath, "manifest", "", "YAML manifest overriding input/output file names")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "log level (trace|debug|info|warn|error)")
	cmd.Flags().BoolVar(&flags.indent, "indent", false, "pretty-print the output JSON")

	return cmd
}

// parseOptions turns command-line flags into translator options.
func parseOptions(flags rootFlags) (translator.Options, error) {
	opts := translator.Options{
		Manifest: translator.DefaultManifest(),
		Indent:   flags.indent,
	}
	if flags.manifestPath != "" {
		m, err := translator.LoadManifest(flags.manifestPath)
		if err != nil {
			return translator.Options{}, fmt.Errorf("loading manifest: %w", err)
		}
		opts.Manifest = *m
	}
	return opts, nil
}

// newLogger returns a console logger on w tagged with a fresh run id.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(lvl).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger(), nil
}
