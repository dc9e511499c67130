package app_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/Amund211/roster/internal/domain"
	"github.com/stretchr/testify/require"
)

type mockedPlayerAPI struct {
	t *testing.T

	players []domain.Player
	err     error

	listCalls   int
	getCalls    []domain.PlayerID
	createCalls []domain.PlayerDraft
	deleteCalls []domain.PlayerID
}

func (m *mockedPlayerAPI) requireDeadline(ctx context.Context) {
	m.t.Helper()
	deadline, ok := ctx.Deadline()
	require.True(m.t, ok)
	require.WithinDuration(m.t, time.Now().Add(5*time.Second), deadline, time.Second)
}

func (m *mockedPlayerAPI) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	m.requireDeadline(ctx)
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.players), nil
}

func (m *mockedPlayerAPI) GetPlayer(ctx context.Context, id domain.PlayerID) (domain.Player, error) {
	m.requireDeadline(ctx)
	m.getCalls = append(m.getCalls, id)
	if m.err != nil {
		return domain.Player{}, m.err
	}
	for _, player := range m.players {
		if player.ID == id {
			return player, nil
		}
	}
	return domain.Player{}, domain.ErrPlayerNotFound
}

func (m *mockedPlayerAPI) CreatePlayer(ctx context.Context, draft domain.PlayerDraft) (domain.Player, error) {
	m.requireDeadline(ctx)
	m.createCalls = append(m.createCalls, draft)
	if m.err != nil {
		return domain.Player{}, m.err
	}
	player := domain.Player{
		ID:       "new",
		Name:     draft.Name,
		Breed:    draft.Breed,
		Status:   draft.Status,
		ImageURL: draft.ImageURL,
	}
	m.players = append(m.players, player)
	return player, nil
}

func (m *mockedPlayerAPI) DeletePlayer(ctx context.Context, id domain.PlayerID) error {
	m.requireDeadline(ctx)
	m.deleteCalls = append(m.deleteCalls, id)
	if m.err != nil {
		return m.err
	}
	m.players = slices.DeleteFunc(m.players, func(player domain.Player) bool {
		return player.ID == id
	})
	return nil
}

// recordingRegion remembers every render and detail it receives
type recordingRegion struct {
	renders [][]domain.Player
	details []domain.Player
}

func (r *recordingRegion) Render(players []domain.Player) {
	r.renders = append(r.renders, slices.Clone(players))
}

func (r *recordingRegion) ShowDetail(player domain.Player) {
	r.details = append(r.details, player)
}
