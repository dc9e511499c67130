package playerapi

import (
	"context"

	"github.com/Amund211/roster/internal/domain"
)

// PlayerAPI is the remote players collection.
//
// All methods return errors wrapping one of domain.ErrNetworkFailure, domain.ErrParseFailure,
// domain.ErrAPIRejected, domain.ErrTemporarilyUnavailable or domain.ErrPlayerNotFound.
// Implementations handle their own error reporting.
type PlayerAPI interface {
	ListPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id domain.PlayerID) (domain.Player, error)
	CreatePlayer(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error)
	DeletePlayer(ctx context.Context, id domain.PlayerID) error
}
