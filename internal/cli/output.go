package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case CreateRoomResult:
		o.printCreateRoomResult(v)
	case RoomResult:
		o.printRoomResult(v)
	case GameState:
		o.printGameState(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// Team response type
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Players []Player `json:"players"`
}

// Match response type
type Match struct {
	ID        string  `json:"id"`
	TeamA     Team    `json:"teamA"`
	TeamB     Team    `json:"teamB"`
	Winner    *string `json:"winner"`
	Timestamp int64   `json:"timestamp"`
}

// GameState response type
type GameState struct {
	Players      []Player `json:"players"`
	TeamA        []Player `json:"teamA"`
	TeamB        []Player `json:"teamB"`
	Bench        []Player `json:"bench"`
	CurrentMatch *Match   `json:"currentMatch"`
	MatchHistory []Match  `json:"matchHistory"`
}

// Room response type
type Room struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	GameState GameState `json:"game_state"`
}

// CreateRoomResult combines the new room id with its owner token
type CreateRoomResult struct {
	RoomID     string `json:"room_id"`
	OwnerToken string `json:"owner_token"`
}

// RoomResult wraps a room with the caller's resolved ownership
type RoomResult struct {
	Room    Room `json:"room"`
	IsOwner bool `json:"is_owner"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printCreateRoomResult(r CreateRoomResult) {
	fmt.Printf("Room: %s\n", r.RoomID)
	fmt.Printf("Owner Token: %s\n", r.OwnerToken)
}

func (o *Output) printRoomResult(r RoomResult) {
	ownerStr := "no"
	if r.IsOwner {
		ownerStr = "yes"
	}
	fmt.Printf("Room: %s (%s)\n", r.Room.Name, r.Room.ID)
	fmt.Printf("Owner: %s\n", ownerStr)
	fmt.Printf("Created: %s\n", r.Room.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated: %s\n", r.Room.UpdatedAt.Format(time.RFC3339))
	fmt.Println()
	o.printGameState(r.Room.GameState)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Players (%d):\n", len(g.Players))
	for _, p := range g.Players {
		o.printPlayerLine("  ", p)
	}

	if len(g.TeamA) > 0 || len(g.TeamB) > 0 {
		fmt.Printf("\nTeam A (%d):\n", len(g.TeamA))
		for _, p := range g.TeamA {
			o.printPlayerLine("  ", p)
		}
		fmt.Printf("Team B (%d):\n", len(g.TeamB))
		for _, p := range g.TeamB {
			o.printPlayerLine("  ", p)
		}
		fmt.Printf("Bench (%d):\n", len(g.Bench))
		for _, p := range g.Bench {
			o.printPlayerLine("  ", p)
		}
	}

	if g.CurrentMatch != nil {
		fmt.Println("\nCurrent Match:")
		o.printMatch("  ", *g.CurrentMatch)
	}

	if len(g.MatchHistory) > 0 {
		fmt.Printf("\nHistory (%d):\n", len(g.MatchHistory))
		for _, m := range g.MatchHistory {
			o.printMatch("  ", m)
		}
	}
}

func (o *Output) printPlayerLine(indent string, p Player) {
	if p.Rating != nil {
		fmt.Printf("%s- %s (%s) [%.1f]\n", indent, p.Name, p.ID, *p.Rating)
		return
	}
	fmt.Printf("%s- %s (%s)\n", indent, p.Name, p.ID)
}

func (o *Output) printMatch(indent string, m Match) {
	winnerStr := "undecided"
	if m.Winner != nil {
		winnerStr = *m.Winner
	}
	at := time.UnixMilli(m.Timestamp).Format(time.RFC3339)
	fmt.Printf("%s%s: %s (%d) vs %s (%d) - winner: %s - %s\n",
		indent, m.ID,
		m.TeamA.Name, len(m.TeamA.Players),
		m.TeamB.Name, len(m.TeamB.Players),
		winnerStr, at)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
