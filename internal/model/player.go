package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents someone in the room's player pool.
// Rating is carried for display purposes only; no balancing logic reads it.
type Player struct {
	ID     PlayerID `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// TeamID identifies one of the two fixed team slots
type TeamID string

const (
	TeamAID TeamID = "team-a"
	TeamBID TeamID = "team-b"
)

// Team is a named snapshot of a lineup, embedded in a Match.
// Players is a copy taken at snapshot time, not a live reference.
type Team struct {
	ID      TeamID   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// ClonePlayers returns a copy of the given player list
func ClonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

// FindPlayer returns the index of the player with the given id, or -1
func FindPlayer(players []Player, id PlayerID) int {
	for i := range players {
		if players[i].ID == id {
			return i
		}
	}
	return -1
}

// RemovePlayerByID returns the list with the matching player filtered out
func RemovePlayerByID(players []Player, id PlayerID) []Player {
	out := make([]Player, 0, len(players))
	for _, p := range players {
		if p.ID != id {
			out = append(out, p)
		}
	}
	return out
}
