package app

import (
	"context"
	"fmt"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
)

type CreatePlayer func(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error)

type playerCreator interface {
	CreatePlayer(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error)
}

func BuildCreatePlayer(api playerCreator) CreatePlayer {
	return func(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error) {
		draft = draft.Normalized()
		if err := draft.Validate(); err != nil {
			logging.FromContext(ctx).InfoContext(ctx, "Rejected player draft", "error", err.Error())
			return domain.Player{}, err
		}

		createCtx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		player, err := api.CreatePlayer(createCtx, draft)
		if err != nil {
			return domain.Player{}, fmt.Errorf("could not create player: %w", err)
		}

		logging.FromContext(ctx).InfoContext(ctx, "Created player", "playerID", string(player.ID))

		return player, nil
	}
}
