package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/ratelimiting"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/view"
)

func MakeRemovePlayerHandler(
	removePlayer app.RemovePlayer,
	rateLimiter ratelimiting.RequestRateLimiter,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("remove_player"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("remove_player"),
		NewRateLimitMiddleware(rateLimiter, rateLimitExceeded),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := domain.PlayerID(r.PathValue("id"))

		page := view.NewPage()
		if err := removePlayer(ctx, id, page); err != nil {
			keepView(w, r, "remove_player", err)
			return
		}

		logging.FromContext(ctx).InfoContext(ctx, "Removed player")

		writePage(w, r, page)
	}

	return middleware(handler)
}
