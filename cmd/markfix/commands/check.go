package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/markfix/cmd/markfix/opts"
	"github.com/walteh/markfix/pkg/operation"
	"github.com/walteh/markfix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	var showDiff bool

	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Report malformed MARK comments without changing files",
		Long: `Check runs the same traversal as fix but never writes. It exits non-zero
when at least one file would be changed, which makes it usable in CI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "check").Logger().WithContext(cmd.Context())

			op, err := operation.NewCheckOperation(operation.Options{
				Config:   opts.Config,
				Reporter: status.NewReporter(opts.Stdout, nil, true),
				ShowDiff: showDiff,
			})
			if err != nil {
				return errors.Errorf("creating check operation: %w", err)
			}

			summary, err := op.Execute(ctx, RootArg(args))
			if err != nil {
				return errors.Errorf("checking MARK comments: %w", err)
			}

			return summary.Err()
		},
	}

	cmd.Flags().BoolVar(&showDiff, "diff", false, "print the lines that would change")

	return cmd
}
