package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/Amund211/roster/internal/adapters/playerapi"
	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/config"
	"github.com/Amund211/roster/internal/logging"
	"github.com/spf13/cobra"
)

type options struct {
	apiURL  string
	cohort  string
	verbose bool
}

type rosterActions struct {
	refresh      app.Refresh
	showPlayer   app.ShowPlayer
	addPlayer    app.AddPlayer
	removePlayer app.RemovePlayer
}

func (o *options) loggingContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level := slog.LevelError
	if o.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	ctx = logging.AddToContext(ctx, logger)
	return logging.AddMetaToContext(ctx, slog.String("cohort", o.cohort), slog.String("apiURL", o.apiURL))
}

func (o *options) actions() (rosterActions, error) {
	apiBaseURL, err := config.ParseAPIBaseURL(o.apiURL)
	if err != nil {
		return rosterActions{}, fmt.Errorf("invalid --api-url: %w", err)
	}

	client, err := playerapi.NewClient(playerapi.NewHTTPClient(), config.CohortURL(apiBaseURL, o.cohort))
	if err != nil {
		return rosterActions{}, fmt.Errorf("invalid --api-url: %w", err)
	}

	refresh := app.BuildRefresh(app.BuildListPlayers(client))
	return rosterActions{
		refresh:      refresh,
		showPlayer:   app.BuildShowPlayer(app.BuildGetPlayer(client), refresh),
		addPlayer:    app.BuildAddPlayer(app.BuildCreatePlayer(client), refresh),
		removePlayer: app.BuildRemovePlayer(app.BuildDeletePlayer(client), refresh),
	}, nil
}

// NewRootCommand creates the roster command with its subcommands
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the Puppy Bowl roster from the terminal",
		Long: `roster lists, shows, adds and removes players in a Puppy Bowl cohort.

Every change is followed by a full reload of the roster, which is printed as a table.

Examples:
  roster list
  roster get 42
  roster add --name Rex --breed Lab --status bench --image-url https://example.com/rex.png
  roster remove 42`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url",
		config.APIBaseURLFromEnv(),
		"Base URL of the players API")
	rootCmd.PersistentFlags().StringVar(&opts.cohort, "cohort",
		config.CohortFromEnv(),
		"Cohort whose roster to manage")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log every API request")

	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newGetCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newRemoveCommand(opts))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
