package playerapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Amund211/roster/internal/domain"
)

// errNotFound marks a 404 or NotFoundError response. Only the single player operations treat it as
// domain.ErrPlayerNotFound, on the collection it means the cohort URL is wrong.
var errNotFound = errors.New("not found")

// Every response from the API is wrapped in this envelope.
// A bare array or object without "success" is not accepted.
type envelope[T any] struct {
	Success *bool     `json:"success"`
	Error   *apiError `json:"error"`
	Data    T         `json:"data"`
}

type apiError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type apiPlayer struct {
	ID        json.RawMessage `json:"id"`
	Name      *string         `json:"name"`
	Breed     *string         `json:"breed"`
	Status    *string         `json:"status"`
	ImageURL  *string         `json:"imageUrl"`
	TeamID    *int            `json:"teamId"`
	CohortID  int             `json:"cohortId"`
	CreatedAt *time.Time      `json:"createdAt"`
	UpdatedAt *time.Time      `json:"updatedAt"`
}

type listData struct {
	Players []apiPlayer `json:"players"`
}

type getData struct {
	Player *apiPlayer `json:"player"`
}

type createData struct {
	NewPlayer *apiPlayer `json:"newPlayer"`
}

type createRequest struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Status   string `json:"status"`
	ImageURL string `json:"imageUrl"`
}

func newCreateRequest(draft domain.PlayerDraft) createRequest {
	return createRequest{
		Name:     draft.Name,
		Breed:    draft.Breed,
		Status:   draft.Status,
		ImageURL: draft.ImageURL,
	}
}

func parsePlayerID(raw json.RawMessage) (domain.PlayerID, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", fmt.Errorf("%w: missing player id", domain.ErrParseFailure)
	}

	if raw[0] == '"' {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return "", fmt.Errorf("%w: invalid player id: %w", domain.ErrParseFailure, err)
		}
		if id == "" {
			return "", fmt.Errorf("%w: empty player id", domain.ErrParseFailure)
		}
		return domain.PlayerID(id), nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", fmt.Errorf("%w: invalid player id: %w", domain.ErrParseFailure, err)
	}
	return domain.PlayerID(number.String()), nil
}

func (p apiPlayer) toDomain() (domain.Player, error) {
	id, err := parsePlayerID(p.ID)
	if err != nil {
		return domain.Player{}, err
	}

	var missing []string
	if p.Name == nil {
		missing = append(missing, "name")
	}
	if p.Breed == nil {
		missing = append(missing, "breed")
	}
	if p.Status == nil {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return domain.Player{}, fmt.Errorf("%w: player %s is missing %s", domain.ErrParseFailure, id, strings.Join(missing, ", "))
	}

	player := domain.Player{
		ID:       id,
		Name:     *p.Name,
		Breed:    *p.Breed,
		Status:   *p.Status,
		TeamID:   p.TeamID,
		CohortID: p.CohortID,
	}
	if p.ImageURL != nil {
		player.ImageURL = *p.ImageURL
	}
	if p.CreatedAt != nil {
		player.CreatedAt = *p.CreatedAt
	}
	if p.UpdatedAt != nil {
		player.UpdatedAt = *p.UpdatedAt
	}

	return player, nil
}

// Unwrap the envelope, mapping status codes and error envelopes to domain errors
func decodeEnvelope[T any](statusCode int, data []byte) (T, error) {
	var empty T

	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return empty, fmt.Errorf("%w: roster API returned status code %d", domain.ErrTemporarilyUnavailable, statusCode)
	case http.StatusNotFound:
		return empty, fmt.Errorf("%w: %w: roster API returned status code %d", domain.ErrAPIRejected, errNotFound, statusCode)
	}

	var response envelope[T]
	if err := json.Unmarshal(data, &response); err != nil {
		return empty, fmt.Errorf("%w: %w", domain.ErrParseFailure, err)
	}
	if response.Success == nil {
		return empty, fmt.Errorf("%w: response is not an envelope", domain.ErrParseFailure)
	}

	if !*response.Success || statusCode < 200 || statusCode >= 300 {
		message := "no error message"
		if response.Error != nil && response.Error.Message != "" {
			message = response.Error.Message
		}
		if response.Error != nil && response.Error.Name == "NotFoundError" {
			return empty, fmt.Errorf("%w: %w: %s", domain.ErrAPIRejected, errNotFound, message)
		}
		return empty, fmt.Errorf("%w: status %d: %s", domain.ErrAPIRejected, statusCode, message)
	}

	return response.Data, nil
}

func playerNotFound(err error) error {
	if errors.Is(err, errNotFound) {
		return domain.ErrPlayerNotFound
	}
	return err
}

func playersFromListResponse(statusCode int, data []byte) ([]domain.Player, error) {
	list, err := decodeEnvelope[*listData](statusCode, data)
	if err != nil {
		return nil, err
	}
	if list == nil || list.Players == nil {
		return nil, fmt.Errorf("%w: missing data.players", domain.ErrParseFailure)
	}

	players := make([]domain.Player, 0, len(list.Players))
	for _, apiPlayer := range list.Players {
		player, err := apiPlayer.toDomain()
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func playerFromGetResponse(statusCode int, data []byte) (domain.Player, error) {
	single, err := decodeEnvelope[*getData](statusCode, data)
	if err != nil {
		return domain.Player{}, playerNotFound(err)
	}
	if single == nil || single.Player == nil {
		return domain.Player{}, fmt.Errorf("%w: missing data.player", domain.ErrParseFailure)
	}

	return single.Player.toDomain()
}

func playerFromCreateResponse(statusCode int, data []byte) (domain.Player, error) {
	created, err := decodeEnvelope[*createData](statusCode, data)
	if err != nil {
		return domain.Player{}, err
	}
	if created == nil || created.NewPlayer == nil {
		return domain.Player{}, fmt.Errorf("%w: missing data.newPlayer", domain.ErrParseFailure)
	}

	return created.NewPlayer.toDomain()
}

func checkDeleteResponse(statusCode int, data []byte) error {
	_, err := decodeEnvelope[json.RawMessage](statusCode, data)
	return playerNotFound(err)
}
