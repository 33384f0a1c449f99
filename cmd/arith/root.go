package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by all commands.
type options struct {
	configPath string
	logLevel   string
}

// setup loads the configuration and creates the logger for a command.
func (o *options) setup(cmd *cobra.Command) (Config, zerolog.Logger, error) {
	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log.Level)
	if err != nil {
		return cfg, zerolog.Nop(), err
	}
	return cfg, logger, nil
}

func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().Timestamp().Str("service", "arith").Logger().
		Level(lvl), nil
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "arith",
		Short: "Evaluate arithmetic expressions",
		Long: `arith reads infix arithmetic expressions from standard input, one per
line, and prints the value of each.

Expressions use decimal numbers, + - * / ^, unary minus, and parentheses.
^ is right-associative, and two parenthesized groups side by side are
multiplied: (2)(3) is 6.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			s := newSession(cmd.InOrStdin(), cmd.OutOrStdout(), logger, cfg.REPL)
			return s.run()
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $"+configEnv+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.AddCommand(newEvalCmd(&opts))
	return root
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate expressions given as arguments",
		Long: `eval evaluates each argument as a separate expression and prints one
result per line. Put -- before the first expression if it starts with -.`,
		Example: "  arith eval '2+3*4' '(2)(3)'\n  arith eval -- -2^2",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			logger = logger.With().Str("component", "eval").Logger()
			failed := 0
			for i, arg := range args {
				r, err := evaluate(logger.With().Int("arg", i+1).Logger(), stripSpace(arg))
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", arg, err)
					failed++
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatNumber(r))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d expressions failed", failed, len(args))
			}
			return nil
		},
	}
}
