package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Amund211/roster/internal/domain"
)

type GetPlayer func(ctx context.Context, id domain.PlayerID) (domain.Player, error)

type playerGetter interface {
	GetPlayer(ctx context.Context, id domain.PlayerID) (domain.Player, error)
}

var errMissingPlayerID = errors.New("missing player id")

func validPlayerID(id domain.PlayerID) error {
	if strings.TrimSpace(string(id)) == "" {
		return fmt.Errorf("%w: %w", domain.ErrValidationFailure, errMissingPlayerID)
	}
	return nil
}

func BuildGetPlayer(api playerGetter) GetPlayer {
	return func(ctx context.Context, id domain.PlayerID) (domain.Player, error) {
		if err := validPlayerID(id); err != nil {
			return domain.Player{}, err
		}

		getCtx, cancel := context.WithTimeout(ctx, apiTimeout)
		defer cancel()

		player, err := api.GetPlayer(getCtx, id)
		if err != nil {
			return domain.Player{}, fmt.Errorf("could not get player %s: %w", id, err)
		}

		return player, nil
	}
}
