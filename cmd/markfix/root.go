package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/walteh/markfix/cmd/markfix/commands"
	"github.com/walteh/markfix/cmd/markfix/opts"
	"github.com/walteh/markfix/pkg/config"
	"github.com/walteh/markfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// newRootCmd builds the command tree; running it without a subcommand fixes root
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	o := &opts.RootOpts{
		Stdout: stdout,
		Stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "markfix [root]",
		Short: "Normalize MARK comments to the \"// MARK: - Label\" form",
		Long: `markfix walks a directory tree of source files and rewrites section marker
comments written as "// MARK: Label" or "// MARK:Label" into the canonical
"// MARK: - Label". Hidden directories and build output are never visited.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupRootOpts(cmd, o)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunFix(cmd.Context(), o, commands.RootArg(args))
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	addRootFlags(cmd, o)

	cmd.AddCommand(
		commands.NewFixCmd(o),
		commands.NewCheckCmd(o),
		newVersionCmd(),
	)

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&o.ConfigFile, opts.FlagConfig, "c", config.DefaultFile, "config file path (yaml, json, hcl or toml)")
	flags.BoolVarP(&o.Debug, opts.FlagDebug, "d", false, "enable debug logging")
	flags.StringVar(&o.Flags.Marker, opts.FlagMarker, "", "marker token to normalize (default \"// MARK:\")")
	flags.StringSliceVar(&o.Flags.Extensions, opts.FlagExt, nil, "file extensions to process (default .swift)")
	flags.StringSliceVar(&o.Flags.ExcludeDirs, opts.FlagExclude, nil, "directory names to skip (default DerivedData,build)")
	flags.StringSliceVar(&o.Flags.ExcludePatterns, opts.FlagExcludePattern, nil, "glob patterns, relative to root, to skip")
	flags.BoolVar(&o.Flags.IncludeHidden, opts.FlagIncludeHidden, false, "descend into directories starting with '.'")
	flags.BoolVar(&o.Flags.FailFast, opts.FlagFailFast, false, "stop at the first file that cannot be processed")
	flags.IntVarP(&o.Flags.Jobs, opts.FlagJobs, "j", 1, "number of files to process at once")
}

// setupRootOpts configures logging and loads the config once flags are parsed
func setupRootOpts(cmd *cobra.Command, o *opts.RootOpts) error {
	logger := log.New(o.Stderr, log.Level(o.Debug))
	ctx := logger.WithContext(cmd.Context())
	ctx = log.NewContext(ctx, log.NewUserLogger(ctx, o.Stderr))

	var cfg *config.Config
	var err error
	if cmd.Flags().Changed(opts.FlagConfig) {
		cfg, err = config.Load(ctx, o.ConfigFile)
	} else {
		cfg, err = config.LoadOrDefault(ctx, o.ConfigFile)
	}
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	o.Flags.Apply(cfg, cmd.Flags().Changed)
	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}

	logger.Debug().Str("config", cfg.String()).Str("file", cfg.Location()).Msg("configuration loaded")

	o.Config = cfg
	cmd.SetContext(ctx)
	return nil
}
