package domain

import "time"

// PlayerID is the identifier assigned to a player by the roster API.
// The client never generates one.
type PlayerID string

type Player struct {
	ID       PlayerID
	Name     string
	Breed    string
	Status   string
	ImageURL string

	// Server-maintained fields, not part of the editable record
	TeamID    *int
	CohortID  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft returns the editable fields of the player
func (p Player) Draft() PlayerDraft {
	return PlayerDraft{
		Name:     p.Name,
		Breed:    p.Breed,
		Status:   p.Status,
		ImageURL: p.ImageURL,
	}
}
