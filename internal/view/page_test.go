package view_test

import (
	"testing"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/domaintest"
	"github.com/Amund211/roster/internal/view"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("single player", func(t *testing.T) {
		t.Parallel()

		page := view.NewPage()
		page.Render([]domain.Player{domaintest.Rex()})

		cards := page.Cards()
		require.Len(t, cards, 1)
		card := cards[0]
		require.Equal(t, "Rex", card.Name)
		require.Equal(t, "Lab", card.Breed)
		require.Equal(t, "bench", card.Status)
		require.Equal(t, "x.png", card.ImageURL)
		require.Equal(t, view.Control{Kind: view.ControlRemove, Label: "Remove", PlayerID: "1"}, card.Remove)
		require.Equal(t, view.Control{Kind: view.ControlDetails, Label: "See Details", PlayerID: "1"}, card.Details)
	})

	t.Run("empty roster", func(t *testing.T) {
		t.Parallel()

		page := view.NewPage()
		page.Render([]domain.Player{})
		require.Empty(t, page.Cards())

		page.Render(nil)
		require.Empty(t, page.Cards())
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		players := []domain.Player{
			domaintest.Rex(),
			domaintest.NewPlayerBuilder("2").Build(),
			domaintest.NewPlayerBuilder("3").WithStatus("field").Build(),
		}

		page := view.NewPage()
		page.Render(players)
		first := page.Cards()
		page.Render(players)
		second := page.Cards()

		require.Len(t, second, 3)
		require.Equal(t, first, second)
	})

	t.Run("clears previous cards", func(t *testing.T) {
		t.Parallel()

		page := view.NewPage()
		page.Render([]domain.Player{domaintest.Rex(), domaintest.NewPlayerBuilder("2").Build()})
		page.Render([]domain.Player{domaintest.NewPlayerBuilder("3").Build()})

		cards := page.Cards()
		require.Len(t, cards, 1)
		require.Equal(t, domain.PlayerID("3"), cards[0].PlayerID)
	})

	t.Run("details survive render", func(t *testing.T) {
		t.Parallel()

		page := view.NewPage()
		page.ShowDetail(domaintest.Rex())
		page.Render([]domain.Player{})

		require.Equal(t, []view.Detail{{
			PlayerID: "1",
			Name:     "Rex",
			Breed:    "Lab",
			Status:   "bench",
			ImageURL: "x.png",
		}}, page.Details())
	})

	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()

		page := view.NewPage()
		page.Render([]domain.Player{domaintest.Rex()})
		page.Notify("hello")

		cards := page.Cards()
		cards[0].Name = "changed"
		notices := page.Notices()
		notices[0] = "changed"

		require.Equal(t, "Rex", page.Cards()[0].Name)
		require.Equal(t, []string{"hello"}, page.Notices())
	})
}
