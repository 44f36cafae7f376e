// Package cli implements the leitner command-line client. Commands operate
// directly on the SQLite database through the same services as the server.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vytor/leitnerflash/internal/app"
	"github.com/vytor/leitnerflash/internal/config"
	"github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
	"github.com/vytor/leitnerflash/internal/remote"
)

const rootLongDesc string = `Leitner flashcard scheduler.

Cards start in bucket 0. On day d every card in a bucket below d is due.
A review moves a card down one bucket (wrong), keeps it in place (hard)
or moves it up one bucket (easy).

Profiles can be named by ID or username. The database defaults to DB_PATH
from the environment or .env file.

Examples:
  leitner profile create ana
  leitner import ana capitals.toml
  leitner day ana
  leitner due ana
  leitner review ana 3 easy`

const rootShortDesc string = "Leitner flashcard scheduler"

// env carries the wired application between the root command and its
// subcommands.
type env struct {
	app     *app.App
	fetcher remote.Fetcher
}

func NewRootCmd() *cobra.Command {
	e := &env{fetcher: remote.New()}

	cmd := &cobra.Command{
		Use:           "leitner",
		Short:         rootShortDesc,
		Long:          rootLongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return e.close()
		},
	}

	cmd.PersistentFlags().String("db", "", "Path to the SQLite database (overrides DB_PATH)")
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cmd.AddCommand(newProfileCmd(e))
	cmd.AddCommand(newImportCmd(e))
	cmd.AddCommand(newDueCmd(e))
	cmd.AddCommand(newReviewCmd(e))
	cmd.AddCommand(newHintCmd(e))
	cmd.AddCommand(newScheduleCmd(e))
	cmd.AddCommand(newProgressCmd(e))
	cmd.AddCommand(newDayCmd(e))

	return cmd
}

// Execute runs the root command and reports errors on stderr.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", failMark, describe(err))
		return 1
	}
	return 0
}

func (e *env) open(cmd *cobra.Command) error {
	cfg := config.Load()
	if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	// The CLI never starts the import pool, but app.New still sizes it.
	if cfg.ImportWorkerCount <= 0 {
		cfg.ImportWorkerCount = 1
	}
	if cfg.ImportQueueSize <= 0 {
		cfg.ImportQueueSize = 1
	}

	level := logger.WARN
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		level = logger.DEBUG
	}
	logger.SetDefault(logger.New(
		logger.WithLevel(level),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithColors(false),
	))

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	e.app = a
	return nil
}

func (e *env) close() error {
	if e.app == nil {
		return nil
	}
	err := e.app.Close()
	e.app = nil
	return err
}

// resolveProfile accepts a numeric profile ID or a username.
func (e *env) resolveProfile(cmd *cobra.Command, ref string) (*models.Profile, error) {
	ctx := cmd.Context()
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return e.app.ProfileService.GetProfile(ctx, id)
	}

	profiles, err := e.app.ProfileService.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.ToLower(strings.TrimSpace(ref))
	for i := range profiles {
		if profiles[i].Username == name {
			return &profiles[i], nil
		}
	}
	return nil, errors.NewNotFoundError("profile", ref)
}

// describe strips the error code from application errors.
func describe(err error) string {
	if appErr := errors.As(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
