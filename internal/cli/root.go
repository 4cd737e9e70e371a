package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/signin"
	"github.com/dmitrymomot/signin/pkg/config"
	"github.com/dmitrymomot/signin/pkg/logger"
)

// LogConfig configures the process logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"`
	Format string `env:"LOG_FORMAT"`
	Env    string `env:"APP_ENV" envDefault:"development"`
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Mode    string
	Verbose bool

	log *slog.Logger
}

// NewRootCommand creates the root command of the signin CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "signin",
		Short:         "Sign-in form with validation and submit gating",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Mode != "" {
				if _, err := signin.ParseMode(opts.Mode); err != nil {
					return err
				}
			}
			log, err := newLogger(opts, cmd)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Mode, "mode", "", "validation mode (submit|change), overrides SIGNIN_MODE")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewPromptCommand(opts))

	return cmd
}

func newLogger(opts *RootOptions, cmd *cobra.Command) (*slog.Logger, error) {
	var cfg LogConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	logOpts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "signin"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(logger.FormIDExtractor()),
	}
	if cfg.Level != "" {
		level, err := logger.ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		logOpts = append(logOpts, logger.WithLevel(level))
	}
	if opts.Verbose {
		logOpts = append(logOpts, logger.WithLevel(slog.LevelDebug))
	}
	switch logger.Format(cfg.Format) {
	case "":
	case logger.FormatJSON, logger.FormatText:
		logOpts = append(logOpts, logger.WithFormat(logger.Format(cfg.Format)))
	default:
		return nil, fmt.Errorf("invalid log format %q: must be json or text", cfg.Format)
	}

	log := logger.New(logOpts...)
	logger.SetAsDefault(log)
	return log, nil
}

// engineOptions loads the engine configuration and applies the --mode flag.
func engineOptions(opts *RootOptions) ([]signin.Option, error) {
	var cfg signin.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		cfg.Mode = opts.Mode
	}
	return cfg.Options()
}
