package cli

import (
	"fmt"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/view"
	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show every player on the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.actions()
			if err != nil {
				return err
			}

			page := view.NewPage()
			if err := actions.refresh(opts.loggingContext(cmd), page); err != nil {
				return err
			}

			return view.WriteTable(cmd.OutOrStdout(), page)
		},
	}
}

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one player's details followed by the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.actions()
			if err != nil {
				return err
			}

			page := view.NewPage()
			if _, err := actions.showPlayer(opts.loggingContext(cmd), domain.PlayerID(args[0]), page); err != nil {
				return err
			}

			return view.WriteTable(cmd.OutOrStdout(), page)
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	var draft domain.PlayerDraft

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a player and show the updated roster",
		Example: `  roster add --name Rex --breed Lab --status bench --image-url https://example.com/rex.png`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.actions()
			if err != nil {
				return err
			}

			page := view.NewPage()
			player, err := actions.addPlayer(opts.loggingContext(cmd), draft, page)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added player #%s\n\n", player.ID)
			return view.WriteTable(cmd.OutOrStdout(), page)
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "Player name (required)")
	cmd.Flags().StringVar(&draft.Breed, "breed", "", "Player breed (required)")
	cmd.Flags().StringVar(&draft.Status, "status", "", "Player status, e.g. bench or field (required)")
	cmd.Flags().StringVar(&draft.ImageURL, "image-url", "", "Player image URL (required)")

	return cmd
}

func newRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a player and show the updated roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := opts.actions()
			if err != nil {
				return err
			}

			id := domain.PlayerID(args[0])
			page := view.NewPage()
			if err := actions.removePlayer(opts.loggingContext(cmd), id, page); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed player #%s\n\n", id)
			return view.WriteTable(cmd.OutOrStdout(), page)
		},
	}
}
