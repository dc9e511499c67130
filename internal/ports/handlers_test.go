package ports_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/domaintest"
	"github.com/Amund211/roster/internal/ports"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func noopMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r)
	}
}

type stubRateLimiter struct {
	allow bool
}

func (s stubRateLimiter) Consume(r *http.Request) bool {
	return s.allow
}

func (s stubRateLimiter) KeyFor(r *http.Request) string {
	return "ip: test"
}

func requireHTML(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/html; charset=utf-8", w.Result().Header.Get("Content-Type"))
	return w.Body.String()
}

func requireKeptView(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())
}

func TestMakeRosterHandler(t *testing.T) {
	t.Parallel()

	makeRefresh := func(players []domain.Player, err error) (app.Refresh, *int) {
		calls := 0
		return func(ctx context.Context, region app.RosterRegion) error {
			calls++
			if err != nil {
				return err
			}
			region.Render(players)
			return nil
		}, &calls
	}

	t.Run("renders the roster", func(t *testing.T) {
		t.Parallel()

		refresh, calls := makeRefresh([]domain.Player{domaintest.Rex()}, nil)
		handler := ports.MakeRosterHandler(refresh, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

		body := requireHTML(t, w)
		require.Equal(t, 1, *calls)
		require.Contains(t, body, `<div class="playerCard" data-id="1"><h4>Rex</h4><p>Lab</p><p>bench</p>`)
		require.NotContains(t, body, `id="notices"`)
	})

	t.Run("failed load renders an empty roster with a notice", func(t *testing.T) {
		t.Parallel()

		refresh, _ := makeRefresh(nil, domain.ErrTemporarilyUnavailable)
		handler := ports.MakeRosterHandler(refresh, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

		body := requireHTML(t, w)
		require.Contains(t, body, `<div id="all-players-container"></div>`)
		require.Contains(t, body, `<p class="notice">The roster service is temporarily unavailable</p>`)
	})
}

func TestMakeShowPlayerHandler(t *testing.T) {
	t.Parallel()

	makeRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/players/"+id, nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("renders the detail and the roster", func(t *testing.T) {
		t.Parallel()

		showPlayer := func(ctx context.Context, id domain.PlayerID, region app.Region) (domain.Player, error) {
			require.Equal(t, domain.PlayerID("1"), id)
			region.ShowDetail(domaintest.Rex())
			region.Render([]domain.Player{domaintest.Rex()})
			return domaintest.Rex(), nil
		}
		handler := ports.MakeShowPlayerHandler(showPlayer, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("1"))

		body := requireHTML(t, w)
		require.Contains(t, body, `<div id="player-details"><div class="player" data-id="1">`)
		require.Contains(t, body, `class="playerCard"`)
	})

	t.Run("unknown player keeps the view", func(t *testing.T) {
		t.Parallel()

		showPlayer := func(ctx context.Context, id domain.PlayerID, region app.Region) (domain.Player, error) {
			return domain.Player{}, domain.ErrPlayerNotFound
		}
		handler := ports.MakeShowPlayerHandler(showPlayer, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("9"))

		requireKeptView(t, w)
	})
}

func TestMakeAddPlayerHandler(t *testing.T) {
	t.Parallel()

	makeRequest := func(form url.Values) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/players", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return req
	}

	rexForm := url.Values{
		"name":     {"Rex"},
		"breed":    {"Lab"},
		"status":   {"bench"},
		"imageUrl": {"x.png"},
	}

	t.Run("submits the form as a draft", func(t *testing.T) {
		t.Parallel()

		called := false
		addPlayer := func(ctx context.Context, draft domain.PlayerDraft, region app.RosterRegion) (domain.Player, error) {
			called = true
			require.Equal(t, domaintest.Rex().Draft(), draft)
			region.Render([]domain.Player{domaintest.Rex()})
			return domaintest.Rex(), nil
		}
		handler := ports.MakeAddPlayerHandler(addPlayer, stubRateLimiter{allow: true}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest(rexForm))

		body := requireHTML(t, w)
		require.True(t, called)
		require.Contains(t, body, `<h4>Rex</h4>`)
	})

	t.Run("rejected draft keeps the view", func(t *testing.T) {
		t.Parallel()

		addPlayer := func(ctx context.Context, draft domain.PlayerDraft, region app.RosterRegion) (domain.Player, error) {
			require.Empty(t, draft.Breed)
			return domain.Player{}, domain.ErrValidationFailure
		}
		handler := ports.MakeAddPlayerHandler(addPlayer, stubRateLimiter{allow: true}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest(url.Values{"name": {"Rex"}}))

		requireKeptView(t, w)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		addPlayer := func(ctx context.Context, draft domain.PlayerDraft, region app.RosterRegion) (domain.Player, error) {
			t.Fatal("should not be called when rate limited")
			return domain.Player{}, nil
		}
		handler := ports.MakeAddPlayerHandler(addPlayer, stubRateLimiter{allow: false}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest(rexForm))

		require.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestMakeRemovePlayerHandler(t *testing.T) {
	t.Parallel()

	makeRequest := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/players/"+id+"/delete", nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("renders the remaining roster", func(t *testing.T) {
		t.Parallel()

		remaining := domaintest.NewPlayerBuilder("2").WithName("Bella").Build()
		removePlayer := func(ctx context.Context, id domain.PlayerID, region app.RosterRegion) error {
			require.Equal(t, domain.PlayerID("1"), id)
			region.Render([]domain.Player{remaining})
			return nil
		}
		handler := ports.MakeRemovePlayerHandler(removePlayer, stubRateLimiter{allow: true}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("1"))

		body := requireHTML(t, w)
		require.Contains(t, body, `<h4>Bella</h4>`)
		require.NotContains(t, body, `data-id="1"`)
	})

	t.Run("failed delete keeps the view", func(t *testing.T) {
		t.Parallel()

		removePlayer := func(ctx context.Context, id domain.PlayerID, region app.RosterRegion) error {
			return domain.ErrNetworkFailure
		}
		handler := ports.MakeRemovePlayerHandler(removePlayer, stubRateLimiter{allow: true}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("1"))

		requireKeptView(t, w)
	})

	t.Run("rate limited", func(t *testing.T) {
		t.Parallel()

		removePlayer := func(ctx context.Context, id domain.PlayerID, region app.RosterRegion) error {
			t.Fatal("should not be called when rate limited")
			return nil
		}
		handler := ports.MakeRemovePlayerHandler(removePlayer, stubRateLimiter{allow: false}, testLogger, noopMiddleware)

		w := httptest.NewRecorder()
		handler(w, makeRequest("1"))

		require.Equal(t, http.StatusTooManyRequests, w.Code)
	})
}

func TestMakeHealthHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	ports.MakeHealthHandler()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}
