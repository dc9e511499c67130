package app

import (
	"context"
	"fmt"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
)

type DeletePlayer func(ctx context.Context, id domain.PlayerID) error

type playerDeleter interface {
	DeletePlayer(ctx context.Context, id domain.PlayerID) error
}

func BuildDeletePlayer(api playerDeleter) DeletePlayer {
	return func(ctx context.Context, id domain.PlayerID) error {
		if err := validPlayerID(id); err != nil {
			return err
		}

		deleteCtx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		if err := api.DeletePlayer(deleteCtx, id); err != nil {
			return fmt.Errorf("could not delete player %s: %w", id, err)
		}

		logging.FromContext(ctx).InfoContext(ctx, "Deleted player", "playerID", string(id))

		return nil
	}
}
