package view

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Amund211/roster/internal/domain"
	"github.com/a-h/templ"
)

// Form field names accepted by the create handler
const (
	FieldName     = "name"
	FieldBreed    = "breed"
	FieldStatus   = "status"
	FieldImageURL = "imageUrl"
)

func esc(s string) string {
	return templ.EscapeString(s)
}

func PlayerPath(id domain.PlayerID) string {
	return "/players/" + url.PathEscape(string(id))
}

func RemovePath(id domain.PlayerID) string {
	return PlayerPath(id) + "/delete"
}

// writeAll writes the parts in order, stopping at the first error
func writeAll(w io.Writer, parts ...string) error {
	for _, part := range parts {
		if _, err := io.WriteString(w, part); err != nil {
			return err
		}
	}
	return nil
}

func ControlButton(control Control) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := esc(string(control.PlayerID))
		switch control.Kind {
		case ControlDetails:
			return writeAll(w,
				`<form method="get" action="`, esc(PlayerPath(control.PlayerID)), `">`,
				`<button type="submit" class="details-button" data-id="`, id, `">`, esc(control.Label), `</button>`,
				`</form>`,
			)
		case ControlRemove:
			return writeAll(w,
				`<form method="post" action="`, esc(RemovePath(control.PlayerID)), `">`,
				`<button type="submit" class="remove-button" data-id="`, id, `">`, esc(control.Label), `</button>`,
				`</form>`,
			)
		default:
			return fmt.Errorf("unknown control kind %q", control.Kind)
		}
	})
}

func PlayerCard(card Card) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			`<div class="playerCard" data-id="`, esc(string(card.PlayerID)), `">`,
			`<h4>`, esc(card.Name), `</h4>`,
			`<p>`, esc(card.Breed), `</p>`,
			`<p>`, esc(card.Status), `</p>`,
			`<img src="`, esc(string(templ.URL(card.ImageURL))), `" class="img" alt="`, esc(card.Name), `">`,
		)
		if err != nil {
			return err
		}
		for _, control := range card.Controls() {
			if err := ControlButton(control).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}

func PlayerDetail(detail Detail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeAll(w,
			`<div class="player" data-id="`, esc(string(detail.PlayerID)), `">`,
			`<h4>`, esc(detail.Name), `</h4>`,
			`<p>`, esc(detail.Breed), `</p>`,
			`<p>`, esc(detail.Status), `</p>`,
			`<p>`, esc(detail.ImageURL), `</p>`,
			`</div>`,
		)
	})
}

func NewPlayerForm() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		input := func(name, placeholder string) string {
			return fmt.Sprintf(`<input type="text" name="%s" placeholder="%s" required />`, name, placeholder)
		}
		return writeAll(w,
			`<form method="post" action="/players">`,
			input(FieldName, "Name"),
			input(FieldBreed, "Breed"),
			input(FieldStatus, "Status"),
			input(FieldImageURL, "imageUrl"),
			`<button type="submit">Add Player</button>`,
			`</form>`,
		)
	})
}

// Roster renders the roster region only
func Roster(page *Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writeAll(w, `<div id="all-players-container">`); err != nil {
			return err
		}
		for _, card := range page.Cards() {
			if err := PlayerCard(card).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeAll(w, `</div>`)
	})
}

func RosterPage(page *Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeAll(w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>Puppy Bowl</title></head><body>`,
		)
		if err != nil {
			return err
		}

		if notices := page.Notices(); len(notices) > 0 {
			escaped := make([]string, 0, len(notices))
			for _, notice := range notices {
				escaped = append(escaped, `<p class="notice">`+esc(notice)+`</p>`)
			}
			if err := writeAll(w, `<div id="notices">`, strings.Join(escaped, ""), `</div>`); err != nil {
				return err
			}
		}

		if err := writeAll(w, `<div id="new-player-form">`); err != nil {
			return err
		}
		if err := NewPlayerForm().Render(ctx, w); err != nil {
			return err
		}
		if err := writeAll(w, `</div>`); err != nil {
			return err
		}

		if err := Roster(page).Render(ctx, w); err != nil {
			return err
		}

		if err := writeAll(w, `<div id="player-details">`); err != nil {
			return err
		}
		for _, detail := range page.Details() {
			if err := PlayerDetail(detail).Render(ctx, w); err != nil {
				return err
			}
		}
		return writeAll(w, `</div></body></html>`)
	})
}
