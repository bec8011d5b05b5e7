package model

import "fmt"

// GameState is the root aggregate for a room: the full player pool, the
// two active teams plus bench, the current match, and the match history
// (most recent first). While a match exists, teamA/teamB/bench partition
// a subset of players; with no match they are empty and players is the
// sole pool.
type GameState struct {
	Players      []Player `json:"players"`
	TeamA        []Player `json:"teamA"`
	TeamB        []Player `json:"teamB"`
	Bench        []Player `json:"bench"`
	CurrentMatch *Match   `json:"currentMatch"`
	MatchHistory []Match  `json:"matchHistory"`
}

// NewGameState returns an empty game state.
// Slices are non-nil so the document serializes with empty arrays.
func NewGameState() GameState {
	return GameState{
		Players:      []Player{},
		TeamA:        []Player{},
		TeamB:        []Player{},
		Bench:        []Player{},
		CurrentMatch: nil,
		MatchHistory: []Match{},
	}
}

// MatchInProgress reports whether there is an undecided current match
func (gs *GameState) MatchInProgress() bool {
	return gs.CurrentMatch != nil && !gs.CurrentMatch.Decided()
}

// Validate checks structural consistency of a state document loaded from
// storage. It rejects documents the controller could not have produced:
// a player id appearing in more than one of teamA/teamB/bench, or team
// and bench members missing from the player pool.
func (gs *GameState) Validate() error {
	seen := make(map[PlayerID]string)
	for slot, list := range map[string][]Player{
		"teamA": gs.TeamA,
		"teamB": gs.TeamB,
		"bench": gs.Bench,
	} {
		for _, p := range list {
			if p.ID == "" {
				return fmt.Errorf("%w: empty player id in %s", ErrInvalidGameState, slot)
			}
			if prev, ok := seen[p.ID]; ok {
				return fmt.Errorf("%w: player %s in both %s and %s", ErrInvalidGameState, p.ID, prev, slot)
			}
			seen[p.ID] = slot
			if FindPlayer(gs.Players, p.ID) < 0 {
				return fmt.Errorf("%w: player %s in %s but not in pool", ErrInvalidGameState, p.ID, slot)
			}
		}
	}

	pool := make(map[PlayerID]bool, len(gs.Players))
	for _, p := range gs.Players {
		if p.ID == "" {
			return fmt.Errorf("%w: empty player id in pool", ErrInvalidGameState)
		}
		if pool[p.ID] {
			return fmt.Errorf("%w: duplicate player %s in pool", ErrInvalidGameState, p.ID)
		}
		pool[p.ID] = true
	}

	return nil
}

// Normalize replaces nil slices with empty ones. Documents written by
// other clients of the same room may omit empty arrays.
func (gs *GameState) Normalize() {
	if gs.Players == nil {
		gs.Players = []Player{}
	}
	if gs.TeamA == nil {
		gs.TeamA = []Player{}
	}
	if gs.TeamB == nil {
		gs.TeamB = []Player{}
	}
	if gs.Bench == nil {
		gs.Bench = []Player{}
	}
	if gs.MatchHistory == nil {
		gs.MatchHistory = []Match{}
	}
}
