package domaintest

import (
	"github.com/Amund211/roster/internal/domain"
)

type playerBuilder struct {
	player *domain.Player
}

func (pb *playerBuilder) WithName(name string) *playerBuilder {
	pb.player.Name = name
	return pb
}

func (pb *playerBuilder) WithBreed(breed string) *playerBuilder {
	pb.player.Breed = breed
	return pb
}

func (pb *playerBuilder) WithStatus(status string) *playerBuilder {
	pb.player.Status = status
	return pb
}

func (pb *playerBuilder) WithImageURL(imageURL string) *playerBuilder {
	pb.player.ImageURL = imageURL
	return pb
}

func (pb *playerBuilder) Build() domain.Player {
	return *pb.player
}

// NewPlayerBuilder starts from a complete bench player with the given id
func NewPlayerBuilder(id domain.PlayerID) *playerBuilder {
	return &playerBuilder{
		player: &domain.Player{
			ID:       id,
			Name:     "Player " + string(id),
			Breed:    "Mixed",
			Status:   "bench",
			ImageURL: "https://example.com/" + string(id) + ".png",
		},
	}
}

// Rex is the canonical single-player roster
func Rex() domain.Player {
	return NewPlayerBuilder("1").
		WithName("Rex").
		WithBreed("Lab").
		WithStatus("bench").
		WithImageURL("x.png").
		Build()
}
