package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/view"
)

// MakeRosterHandler serves the full roster page.
// A failed load still renders the page, with an empty roster and a notice.
func MakeRosterHandler(
	refresh app.Refresh,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("roster"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("roster"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := view.NewPage()

		if err := refresh(ctx, page); err != nil {
			// NOTE: The player API client reports its own unexpected errors
			logging.FromContext(ctx).WarnContext(ctx, "Failed to load roster", "error", err.Error())
			page.Notify(describeError(err))
		}

		writePage(w, r, page)
	}

	return middleware(handler)
}

func MakeHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}
