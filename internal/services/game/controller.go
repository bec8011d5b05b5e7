package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/clock"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/ident"
	"github.com/futevolucao/futevolucao-go/internal/metrics"
	"github.com/futevolucao/futevolucao-go/internal/model"
	"github.com/futevolucao/futevolucao-go/internal/services/room"
	"github.com/futevolucao/futevolucao-go/internal/services/teams"
	"github.com/futevolucao/futevolucao-go/internal/storage"
)

// DefaultPlayersPerTeam is used when a split request gives no size
const DefaultPlayersPerTeam = 5

// Controller owns the game state of each room and applies all mutating
// operations: load room, verify ownership, run the transformation, save.
// Operations are synchronous; a precondition failure returns a model
// error with nothing persisted. There is one logical writer per room and
// no merge between racing owners (last write wins at the store).
type Controller struct {
	storage storage.Storage
	rooms   *room.Service
	teams   *teams.Service
	ident   ident.Generator
	clock   clock.Clock
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewController creates a new game Controller
func NewController(
	store storage.Storage,
	rooms *room.Service,
	teamsService *teams.Service,
	idg ident.Generator,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Controller {
	return &Controller{
		storage: store,
		rooms:   rooms,
		teams:   teamsService,
		ident:   idg,
		clock:   clk,
		logger:  logger,
		metrics: m,
	}
}

// GetState returns the current game state of a room. Reads need no token.
func (c *Controller) GetState(ctx context.Context, roomID model.RoomID) (*model.GameState, error) {
	r, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	return &r.State, nil
}

// mutate loads the room, checks ownership, applies fn to the state and
// saves the result. fn runs against the loaded copy, so an error from fn
// leaves the persisted state untouched.
func (c *Controller) mutate(ctx context.Context, roomID model.RoomID, token, op string, fn func(gs *model.GameState) error) (*model.GameState, error) {
	c.metrics.Operation(op)

	r, err := c.storage.GetRoom(ctx, roomID)
	if err != nil {
		c.metrics.OperationFailed(op)
		return nil, err
	}

	if !c.rooms.Authorize(r, token) {
		c.metrics.OperationFailed(op)
		return nil, model.ErrNotOwner
	}

	if err := fn(&r.State); err != nil {
		c.metrics.OperationFailed(op)
		return nil, err
	}

	r.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveRoom(ctx, r); err != nil {
		c.metrics.OperationFailed(op)
		c.logger.Error("failed to save room",
			slog.String("room_id", string(roomID)),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	return &r.State, nil
}

// AddPlayer adds a player to the pool. While a match exists the newcomer
// also goes to the bench so the active lineups are not disturbed.
func (c *Controller) AddPlayer(ctx context.Context, roomID model.RoomID, token, name string) (*model.GameState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrPlayerNameRequired
	}

	player := model.Player{
		ID:   model.PlayerID(c.ident.NewID()),
		Name: name,
	}

	return c.mutate(ctx, roomID, token, "add_player", func(gs *model.GameState) error {
		gs.Players = append(gs.Players, player)
		if gs.CurrentMatch != nil {
			gs.Bench = append(gs.Bench, player)
		}
		return nil
	})
}

// EditPlayer renames the player with the given id everywhere it appears:
// pool, both teams, bench, and the snapshots of an in-progress match.
// Decided and historical matches are never touched. The name is trimmed;
// an empty result is allowed and simply stored.
func (c *Controller) EditPlayer(ctx context.Context, roomID model.RoomID, token string, id model.PlayerID, name string) (*model.GameState, error) {
	name = strings.TrimSpace(name)

	return c.mutate(ctx, roomID, token, "edit_player", func(gs *model.GameState) error {
		if model.FindPlayer(gs.Players, id) < 0 {
			return model.ErrPlayerNotFound
		}

		rename := func(players []model.Player) {
			for i := range players {
				if players[i].ID == id {
					players[i].Name = name
				}
			}
		}

		rename(gs.Players)
		rename(gs.TeamA)
		rename(gs.TeamB)
		rename(gs.Bench)

		if gs.MatchInProgress() {
			rename(gs.CurrentMatch.TeamA.Players)
			rename(gs.CurrentMatch.TeamB.Players)
		}
		return nil
	})
}

// RemovePlayer takes a player out of the pool and every slot. If that
// leaves the active teams unequal the larger team is trimmed down to the
// smaller one's size, trailing players moving to the bench, and the
// current match snapshots are refreshed to the new lineups.
func (c *Controller) RemovePlayer(ctx context.Context, roomID model.RoomID, token string, id model.PlayerID) (*model.GameState, error) {
	return c.mutate(ctx, roomID, token, "remove_player", func(gs *model.GameState) error {
		if model.FindPlayer(gs.Players, id) < 0 {
			return model.ErrPlayerNotFound
		}

		removedFromTeamA := model.FindPlayer(gs.TeamA, id) >= 0
		removedFromTeamB := model.FindPlayer(gs.TeamB, id) >= 0

		gs.Players = model.RemovePlayerByID(gs.Players, id)
		gs.TeamA = model.RemovePlayerByID(gs.TeamA, id)
		gs.TeamB = model.RemovePlayerByID(gs.TeamB, id)
		gs.Bench = model.RemovePlayerByID(gs.Bench, id)

		switch {
		case gs.CurrentMatch != nil && (removedFromTeamA || removedFromTeamB):
			targetSize := min(len(gs.TeamA), len(gs.TeamB))
			if len(gs.TeamA) > targetSize {
				gs.Bench = append(gs.Bench, gs.TeamA[targetSize:]...)
				gs.TeamA = gs.TeamA[:targetSize]
			} else if len(gs.TeamB) > targetSize {
				gs.Bench = append(gs.Bench, gs.TeamB[targetSize:]...)
				gs.TeamB = gs.TeamB[:targetSize]
			}
			gs.CurrentMatch.TeamA.Players = model.ClonePlayers(gs.TeamA)
			gs.CurrentMatch.TeamB.Players = model.ClonePlayers(gs.TeamB)

		case gs.CurrentMatch != nil:
			// Bench-only removal: the lineups are intact, just make sure
			// the snapshots no longer reference the player.
			gs.CurrentMatch.TeamA.Players = model.RemovePlayerByID(gs.CurrentMatch.TeamA.Players, id)
			gs.CurrentMatch.TeamB.Players = model.RemovePlayerByID(gs.CurrentMatch.TeamB.Players, id)
		}
		return nil
	})
}

// ShuffleAndSplit deals the whole pool into two fresh teams plus bench
// and starts a new match. Any previous undecided match is discarded, not
// archived.
func (c *Controller) ShuffleAndSplit(ctx context.Context, roomID model.RoomID, token string, playersPerTeam int) (*model.GameState, error) {
	if playersPerTeam <= 0 {
		playersPerTeam = DefaultPlayersPerTeam
	}

	return c.mutate(ctx, roomID, token, "shuffle_and_split", func(gs *model.GameState) error {
		if len(gs.Players) < playersPerTeam*2 {
			return model.ErrInsufficientPlayers
		}

		split := c.teams.SplitIntoTeams(gs.Players, playersPerTeam)
		if len(split.TeamA) < playersPerTeam || len(split.TeamB) < playersPerTeam {
			return model.ErrRotationFailed
		}

		match := c.teams.NewMatch(split.TeamA, split.TeamB)

		gs.TeamA = split.TeamA
		gs.TeamB = split.TeamB
		gs.Bench = split.Bench
		gs.CurrentMatch = &match
		return nil
	})
}

// PickWinner decides the current match. The decided match is prepended
// to the history and stays visible as the current match until
// StartNextMatch replaces it.
func (c *Controller) PickWinner(ctx context.Context, roomID model.RoomID, token string, winner model.Side) (*model.GameState, error) {
	if !winner.Valid() {
		return nil, model.ErrInvalidSide
	}

	return c.mutate(ctx, roomID, token, "pick_winner", func(gs *model.GameState) error {
		if gs.CurrentMatch == nil {
			return model.ErrNoCurrentMatch
		}
		if gs.CurrentMatch.Decided() {
			return model.ErrMatchAlreadyDecided
		}

		w := winner
		gs.CurrentMatch.Winner = &w

		gs.MatchHistory = append([]model.Match{gs.CurrentMatch.Clone()}, gs.MatchHistory...)
		return nil
	})
}

// StartNextMatch rotates the bench against the losing team and opens a
// fresh match. Requires a decided current match and enough players for
// two teams of the current (minimum) size.
func (c *Controller) StartNextMatch(ctx context.Context, roomID model.RoomID, token string) (*model.GameState, error) {
	return c.mutate(ctx, roomID, token, "start_next_match", func(gs *model.GameState) error {
		if gs.CurrentMatch == nil {
			return model.ErrNoCurrentMatch
		}
		if !gs.CurrentMatch.Decided() {
			return model.ErrMatchUndecided
		}

		// Teams can be unbalanced after removals; the smaller side sets
		// the target size for the next match.
		playersPerTeam := min(len(gs.TeamA), len(gs.TeamB))
		totalPlayers := len(gs.TeamA) + len(gs.TeamB) + len(gs.Bench)
		if playersPerTeam == 0 || totalPlayers < playersPerTeam*2 {
			return model.ErrInsufficientPlayers
		}

		split := c.teams.RotateTeams(gs.TeamA, gs.TeamB, gs.Bench, *gs.CurrentMatch.Winner)
		if len(split.TeamA) != playersPerTeam || len(split.TeamB) != playersPerTeam {
			return model.ErrRotationFailed
		}

		match := c.teams.NewMatch(split.TeamA, split.TeamB)

		gs.TeamA = split.TeamA
		gs.TeamB = split.TeamB
		gs.Bench = split.Bench
		gs.CurrentMatch = &match
		return nil
	})
}

// ResetGame clears teams, bench, the current match and the history but
// keeps the player pool.
func (c *Controller) ResetGame(ctx context.Context, roomID model.RoomID, token string) (*model.GameState, error) {
	return c.mutate(ctx, roomID, token, "reset_game", func(gs *model.GameState) error {
		players := gs.Players
		*gs = model.NewGameState()
		gs.Players = players
		return nil
	})
}

// ClearAllData resets every field, players included
func (c *Controller) ClearAllData(ctx context.Context, roomID model.RoomID, token string) (*model.GameState, error) {
	return c.mutate(ctx, roomID, token, "clear_all_data", func(gs *model.GameState) error {
		*gs = model.NewGameState()
		return nil
	})
}
