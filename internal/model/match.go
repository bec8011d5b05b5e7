package model

// MatchID uniquely identifies a match
type MatchID string

// Side names one of the two teams in a match
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Valid reports whether the side is one of the two known values
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Match records a single game between the two current teams.
// Winner is nil while the match is in progress. Timestamp is epoch
// milliseconds, matching the stored document format.
type Match struct {
	ID        MatchID `json:"id"`
	TeamA     Team    `json:"teamA"`
	TeamB     Team    `json:"teamB"`
	Winner    *Side   `json:"winner"`
	Timestamp int64   `json:"timestamp"`
}

// Decided reports whether a winner has been picked
func (m *Match) Decided() bool {
	return m.Winner != nil
}

// Clone returns a deep copy of the match
func (m *Match) Clone() Match {
	out := *m
	out.TeamA.Players = ClonePlayers(m.TeamA.Players)
	out.TeamB.Players = ClonePlayers(m.TeamB.Players)
	if m.Winner != nil {
		w := *m.Winner
		out.Winner = &w
	}
	return out
}
