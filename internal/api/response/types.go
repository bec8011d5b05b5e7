package response

import (
	"time"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:     string(p.ID),
		Name:   p.Name,
		Rating: p.Rating,
	}
}

func playersFromModel(players []model.Player) []Player {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return out
}

// Team represents a match team snapshot
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// TeamFromModel converts model.Team
func TeamFromModel(t model.Team) Team {
	return Team{
		ID:      string(t.ID),
		Name:    t.Name,
		Players: playersFromModel(t.Players),
	}
}

// Match represents a match record
type Match struct {
	ID        string  `json:"id"`
	TeamA     Team    `json:"teamA"`
	TeamB     Team    `json:"teamB"`
	Winner    *string `json:"winner"`
	Timestamp int64   `json:"timestamp"`
}

// MatchFromModel converts model.Match
func MatchFromModel(m model.Match) Match {
	var winner *string
	if m.Winner != nil {
		w := string(*m.Winner)
		winner = &w
	}
	return Match{
		ID:        string(m.ID),
		TeamA:     TeamFromModel(m.TeamA),
		TeamB:     TeamFromModel(m.TeamB),
		Winner:    winner,
		Timestamp: m.Timestamp,
	}
}

// GameState represents a room's full game state
type GameState struct {
	Players      []Player `json:"players"`
	TeamA        []Player `json:"teamA"`
	TeamB        []Player `json:"teamB"`
	Bench        []Player `json:"bench"`
	CurrentMatch *Match   `json:"currentMatch"`
	MatchHistory []Match  `json:"matchHistory"`
}

// GameStateFromModel converts model.GameState
func GameStateFromModel(gs *model.GameState) GameState {
	var current *Match
	if gs.CurrentMatch != nil {
		m := MatchFromModel(*gs.CurrentMatch)
		current = &m
	}

	history := make([]Match, len(gs.MatchHistory))
	for i, m := range gs.MatchHistory {
		history[i] = MatchFromModel(m)
	}

	return GameState{
		Players:      playersFromModel(gs.Players),
		TeamA:        playersFromModel(gs.TeamA),
		TeamB:        playersFromModel(gs.TeamB),
		Bench:        playersFromModel(gs.Bench),
		CurrentMatch: current,
		MatchHistory: history,
	}
}

// Room represents a room in API responses. The owner token hash never
// leaves the server.
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GameState GameState `json:"game_state"`
}

// RoomFromModel converts model.Room
func RoomFromModel(r *model.Room) Room {
	return Room{
		ID:        string(r.ID),
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		GameState: GameStateFromModel(&r.State),
	}
}

// CreateRoomResponse is returned once at room creation; this is the only
// time the owner token is visible.
type CreateRoomResponse struct {
	RoomID     string `json:"room_id"`
	OwnerToken string `json:"owner_token"`
}

// GetRoomResponse wraps a room with the caller's resolved ownership
type GetRoomResponse struct {
	Room    Room `json:"room"`
	IsOwner bool `json:"is_owner"`
}
