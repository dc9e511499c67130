package ports

import (
	"log/slog"
	"net/http"

	"github.com/Amund211/roster/internal/app"
	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/view"
)

func MakeShowPlayerHandler(
	showPlayer app.ShowPlayer,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("show_player"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("show_player"),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		page := view.NewPage()

		_, err := showPlayer(r.Context(), domain.PlayerID(r.PathValue("id")), page)
		if err != nil {
			keepView(w, r, "show_player", err)
			return
		}

		writePage(w, r, page)
	}

	return middleware(handler)
}
