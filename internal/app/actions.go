package app

import (
	"context"
	"fmt"

	"github.com/Amund211/roster/internal/domain"
)

// Every successful mutation is followed by exactly one full refresh.
// A failed action returns before touching the region.

type ShowPlayer func(ctx context.Context, id domain.PlayerID, region Region) (domain.Player, error)

type AddPlayer func(ctx context.Context, draft domain.PlayerDraft, region RosterRegion) (domain.Player, error)

type RemovePlayer func(ctx context.Context, id domain.PlayerID, region RosterRegion) error

func BuildShowPlayer(getPlayer GetPlayer, refresh Refresh) ShowPlayer {
	return func(ctx context.Context, id domain.PlayerID, region Region) (domain.Player, error) {
		player, err := getPlayer(ctx, id)
		if err != nil {
			return domain.Player{}, err
		}

		region.ShowDetail(player)

		if err := refresh(ctx, region); err != nil {
			return player, fmt.Errorf("showed player %s: %w", id, err)
		}

		return player, nil
	}
}

func BuildAddPlayer(createPlayer CreatePlayer, refresh Refresh) AddPlayer {
	return func(ctx context.Context, draft domain.PlayerDraft, region RosterRegion) (domain.Player, error) {
		player, err := createPlayer(ctx, draft)
		if err != nil {
			return domain.Player{}, err
		}

		if err := refresh(ctx, region); err != nil {
			return player, fmt.Errorf("created player %s: %w", player.ID, err)
		}

		return player, nil
	}
}

func BuildRemovePlayer(deletePlayer DeletePlayer, refresh Refresh) RemovePlayer {
	return func(ctx context.Context, id domain.PlayerID, region RosterRegion) error {
		if err := deletePlayer(ctx, id); err != nil {
			return err
		}

		if err := refresh(ctx, region); err != nil {
			return fmt.Errorf("deleted player %s: %w", id, err)
		}

		return nil
	}
}
