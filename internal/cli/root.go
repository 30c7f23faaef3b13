package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/chaz8081/moodlog/internal/config"
	"github.com/chaz8081/moodlog/internal/mood"
	"github.com/chaz8081/moodlog/internal/paths"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrReported marks a failure whose message has already been printed.
var ErrReported = errors.New("failure already reported")

var (
	rootCmd = &cobra.Command{
		Use:   "moodlog <value>",
		Short: "moodlog - jot down how you feel, one number at a time",
		Long: `moodlog records a mood rating between 0 and 10 in a local SQLite
database, optionally with a short note and an explicit time.

  Examples:
  moodlog 7                              # log a 7 right now
  moodlog 3.5 -m "long day"              # add a note
  moodlog 6 --datetime 2024-03-01T09:00:00+01:00
  moodlog 8 -d ~/notes/mood.db           # use a specific database
`,
		Args:          validateArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			req := logRequest{
				Message:    message,
				MessageSet: cmd.Flags().Changed("message"),
				Datetime:   datetime,
				DBPath:     dbPath,
			}
			if len(args) == 1 {
				if req.Value, err = mood.ParseValue(args[0]); err != nil {
					return err
				}
			} else {
				v, note, err := promptEntry(message)
				if err != nil {
					return err
				}
				req.Value, req.Message = v, note
			}

			return recordMood(cmd.Context(), cmd.OutOrStdout(), req, cfg)
		},
	}

	message          string
	datetime         string
	dbPath           string
	verbose          bool
	logger           = newLogger(false)
	isInteractiveTTY = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
)

func init() {
	rootCmd.Flags().StringVarP(&message, "message", "m", "", "optional note to store with the rating")
	rootCmd.Flags().StringVar(&datetime, "datetime", "", "RFC 3339 timestamp for the entry (default now)")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "dbpath", "d", "", "database file, must end in .db (default <data-dir>/mood.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root cobra command
func Execute() error {
	return rootCmd.Execute()
}

// validateArgs checks the positional value and --dbpath before anything runs,
// so bad input surfaces as a usage error.
func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("accepts at most 1 arg, received %d", len(args))
	}
	if len(args) == 0 && !isInteractiveTTY() {
		return fmt.Errorf("requires a mood value between %g and %g", mood.MinValue, mood.MaxValue)
	}
	if len(args) == 1 {
		if _, err := mood.ParseValue(args[0]); err != nil {
			return err
		}
	}
	if dbPath != "" {
		if _, err := mood.ValidateDBPath(dbPath); err != nil {
			return err
		}
	}
	return nil
}

// loadConfig reads the user config, applies the environment override and
// turns on debug logging when either --verbose or the config asks for it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(paths.ConfigPath())
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger = newLogger(verbose || cfg.Verbose)
	debugf("config loaded from %s", paths.ConfigPath())
	return cfg, nil
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// helper for internal debug prints
func debugf(format string, a ...any) {
	logger.Debug(fmt.Sprintf(format, a...))
}
