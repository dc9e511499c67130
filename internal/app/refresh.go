package app

import (
	"context"
	"fmt"

	"github.com/Amund211/roster/internal/domain"
)

// RosterRegion is the part of the display rebuilt by every refresh
type RosterRegion interface {
	Render(players []domain.Player)
}

// DetailRegion receives single player details
type DetailRegion interface {
	ShowDetail(player domain.Player)
}

type Region interface {
	RosterRegion
	DetailRegion
}

// Refresh fetches the full roster and re-renders the region.
// If the fetch fails the region is left untouched.
type Refresh func(ctx context.Context, region RosterRegion) error

func BuildRefresh(listPlayers ListPlayers) Refresh {
	return func(ctx context.Context, region RosterRegion) error {
		players, err := listPlayers(ctx)
		if err != nil {
			return fmt.Errorf("could not refresh roster: %w", err)
		}

		region.Render(players)

		return nil
	}
}
