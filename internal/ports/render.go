package ports

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Amund211/roster/internal/domain"
	"github.com/Amund211/roster/internal/logging"
	"github.com/Amund211/roster/internal/reporting"
	"github.com/Amund211/roster/internal/view"
	"github.com/a-h/templ"
)

func writePage(w http.ResponseWriter, r *http.Request, page *view.Page) {
	templ.Handler(
		view.RosterPage(page),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			reporting.Report(r.Context(), fmt.Errorf("failed to render page: %w", err))
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// keepView answers a failed action without a document so the browser keeps showing the previous one
func keepView(w http.ResponseWriter, r *http.Request, action string, err error) {
	ctx := r.Context()
	logging.FromContext(ctx).WarnContext(ctx, "Action failed, keeping previous view",
		"action", action,
		"cause", describeError(err),
		"error", err.Error(),
	)
	w.WriteHeader(http.StatusNoContent)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound):
		return "That player could not be found"
	case errors.Is(err, domain.ErrValidationFailure):
		return "Every player field is required"
	case errors.Is(err, domain.ErrTemporarilyUnavailable):
		return "The roster service is temporarily unavailable"
	case errors.Is(err, domain.ErrNetworkFailure):
		return "The roster service could not be reached"
	case errors.Is(err, domain.ErrAPIRejected):
		return "The roster service rejected the request"
	case errors.Is(err, domain.ErrParseFailure):
		return "The roster service sent an unexpected response"
	default:
		return "Something went wrong"
	}
}
