// Package view holds the display regions the roster is rendered into and their HTML and text encodings
package view

import (
	"slices"

	"github.com/Amund211/roster/internal/domain"
)

type ControlKind string

const (
	ControlDetails ControlKind = "details"
	ControlRemove  ControlKind = "remove"
)

// Control is a button on a card, tagged with the player it acts on
type Control struct {
	Kind     ControlKind
	Label    string
	PlayerID domain.PlayerID
}

type Card struct {
	PlayerID domain.PlayerID
	Name     string
	Breed    string
	Status   string
	ImageURL string
	Details  Control
	Remove   Control
}

func (c Card) Controls() []Control {
	return []Control{c.Details, c.Remove}
}

type Detail struct {
	PlayerID domain.PlayerID
	Name     string
	Breed    string
	Status   string
	ImageURL string
}

func NewCard(player domain.Player) Card {
	return Card{
		PlayerID: player.ID,
		Name:     player.Name,
		Breed:    player.Breed,
		Status:   player.Status,
		ImageURL: player.ImageURL,
		Details: Control{
			Kind:     ControlDetails,
			Label:    "See Details",
			PlayerID: player.ID,
		},
		Remove: Control{
			Kind:     ControlRemove,
			Label:    "Remove",
			PlayerID: player.ID,
		},
	}
}

// Page is the document a roster client owns: the roster region holding one card per player,
// and the detail region that Get appends to.
//
// Render only touches the roster region, so a detail shown right before a refresh survives it.
// A Page is not safe for concurrent use.
type Page struct {
	cards   []Card
	details []Detail
	notices []string
}

func NewPage() *Page {
	return &Page{
		cards:   []Card{},
		details: []Detail{},
		notices: []string{},
	}
}

// Render clears the roster region and rebuilds one card per player, in order
func (p *Page) Render(players []domain.Player) {
	cards := make([]Card, 0, len(players))
	for _, player := range players {
		cards = append(cards, NewCard(player))
	}
	p.cards = cards
}

// ShowDetail appends a detail node for the player
func (p *Page) ShowDetail(player domain.Player) {
	p.details = append(p.details, Detail{
		PlayerID: player.ID,
		Name:     player.Name,
		Breed:    player.Breed,
		Status:   player.Status,
		ImageURL: player.ImageURL,
	})
}

// Notify adds a message shown above the roster
func (p *Page) Notify(message string) {
	p.notices = append(p.notices, message)
}

func (p *Page) Cards() []Card {
	return slices.Clone(p.cards)
}

func (p *Page) Details() []Detail {
	return slices.Clone(p.details)
}

func (p *Page) Notices() []string {
	return slices.Clone(p.notices)
}
