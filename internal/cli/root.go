package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/zjuct/myfind/internal/core"
	"github.com/zjuct/myfind/internal/ops"
)

// NewRootCmd constructs the root command for myfind
func NewRootCmd(cfg *core.Config) *cobra.Command {
	return newRootCmd(cfg, afero.NewOsFs())
}

func newRootCmd(cfg *core.Config, fsys afero.Fs) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "myfind [flags] [starting-point...]",
		Short: "Find files whose names match regular expressions",
		Long: `myfind walks each starting point recursively and prints every file whose
base name matches one of the given regular expressions.

Starting points default to the current directory. A file is listed once for
each starting point and expression that finds it unless --unique is given,
in which case the list is sorted and duplicates are dropped.`,
		Example: `
# Markdown files below the current directory
myfind -e '\.md$'

# Two trees, two expressions, sorted and without duplicates
myfind -u -p src -p docs -e '^README' -e '\.txt$'

# Print the contents of every match, decoding latin1
myfind -v --encoding latin1 -e '^notes-' archive`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.FromFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg.AddStarts(args)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd, cfg, fsys)
		},
	}

	rootCmd.Flags().StringArrayP("path", "p", nil, "starting point (repeatable; default .)")
	rootCmd.Flags().StringArrayP("expression", "e", nil, "regular expression matched against file names (repeatable)")
	rootCmd.Flags().BoolP("unique", "u", false, "sort matches and drop duplicates")
	rootCmd.Flags().BoolP("verbose", "v", false, "print the contents of each match")
	rootCmd.Flags().String("encoding", "utf-8", "encoding of printed file contents")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolP("quiet", "q", false, "only log warnings and errors")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Mark(err, core.ErrUsage)
	})

	return rootCmd
}

func runFind(cmd *cobra.Command, cfg *core.Config, fsys afero.Fs) error {
	out := cmd.OutOrStdout()
	setColor(out, cfg.NoColor)
	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	res, err := core.CompilePatterns(cfg.Expressions)
	if err != nil {
		return err
	}
	starts := core.StartingPoints(cfg.Starts)

	for _, s := range starts {
		logger.Info("starting point", "path", s)
	}
	for _, re := range res {
		logger.Info("pattern", "expr", re.String())
	}

	matches, err := ops.Search(ops.SearchOpts{
		Fs:       fsys,
		Starts:   starts,
		Patterns: ops.Matchers(res),
		Unique:   cfg.Unique,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return ops.Report(out, matches, ops.ReportOpts{
		Verbose:  cfg.Verbose,
		Encoding: cfg.Encoding,
	})
}
