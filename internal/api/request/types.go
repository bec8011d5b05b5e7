// Package request defines the JSON request bodies accepted by the API
package request

// CreateRoomRequest is the body for POST /rooms
type CreateRoomRequest struct {
	Name string `json:"name"`
}

// AddPlayerRequest is the body for POST /rooms/{id}/players
type AddPlayerRequest struct {
	Name string `json:"name"`
}

// EditPlayerRequest is the body for PATCH /rooms/{id}/players/{player_id}
type EditPlayerRequest struct {
	Name string `json:"name"`
}

// SplitRequest is the body for POST /rooms/{id}/split.
// PlayersPerTeam defaults to 5 when omitted or zero.
type SplitRequest struct {
	PlayersPerTeam int `json:"players_per_team"`
}

// PickWinnerRequest is the body for POST /rooms/{id}/winner
type PickWinnerRequest struct {
	Winner string `json:"winner"`
}
