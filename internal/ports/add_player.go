package ports

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/ratelimiting"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/view"
)

const maxFormBytes = 64 << 10

func MakeAddPlayerHandler(
	addPlayer app.AddPlayer,
	rateLimiter ratelimiting.RequestRateLimiter,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("add_player"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("add_player"),
		NewRateLimitMiddleware(rateLimiter, rateLimitExceeded),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
		if err := r.ParseForm(); err != nil {
			keepView(w, r, "add_player", fmt.Errorf("%w: could not parse form: %w", domain.ErrValidationFailure, err))
			return
		}

		draft := domain.PlayerDraft{
			Name:     r.PostFormValue(view.FieldName),
			Breed:    r.PostFormValue(view.FieldBreed),
			Status:   r.PostFormValue(view.FieldStatus),
			ImageURL: r.PostFormValue(view.FieldImageURL),
		}

		page := view.NewPage()
		player, err := addPlayer(ctx, draft, page)
		if err != nil {
			keepView(w, r, "add_player", err)
			return
		}

		logging.FromContext(ctx).InfoContext(ctx, "Added player", "createdPlayerID", string(player.ID))

		writePage(w, r, page)
	}

	return middleware(handler)
}
