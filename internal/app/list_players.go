package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
)

const apiTimeout = 5 * time.Second

type ListPlayers func(ctx context.Context) ([]domain.Player, error)

type playerLister interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
}

func BuildListPlayers(api playerLister) ListPlayers {
	return func(ctx context.Context) ([]domain.Player, error) {
		listCtx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		players, err := api.ListPlayers(listCtx)
		if err != nil {
			// NOTE: PlayerAPI implementations handle their own error reporting
			return nil, fmt.Errorf("could not list players: %w", err)
		}

		logging.FromContext(ctx).InfoContext(ctx, "Listed players", "count", len(players))

		return players, nil
	}
}
