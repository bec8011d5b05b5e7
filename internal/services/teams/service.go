package teams

import (
	"github.com/futevolucao/futevolucao-go/internal/dependencies/clock"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/ident"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/random"
	"github.com/futevolucao/futevolucao-go/internal/model"
)

// Team display names used in match snapshots
const (
	TeamAName = "Team A"
	TeamBName = "Team B"
)

// Split is the result of partitioning a player pool
type Split struct {
	TeamA []model.Player
	TeamB []model.Player
	Bench []model.Player
}

// Service implements the pure team formation and rotation engine.
// All methods return fresh slices and never mutate their inputs; callers
// decide whether and where the result is committed.
type Service struct {
	random random.Random
	ident  ident.Generator
	clock  clock.Clock
}

// New creates a new teams Service
func New(rnd random.Random, idg ident.Generator, clk clock.Clock) *Service {
	return &Service{
		random: rnd,
		ident:  idg,
		clock:  clk,
	}
}

// Shuffle returns a uniformly random permutation of the given players
// (Fisher-Yates). The input is left untouched.
func (s *Service) Shuffle(players []model.Player) []model.Player {
	shuffled := model.ClonePlayers(players)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.random.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// SplitIntoTeams shuffles the pool and deals the first playersPerTeam to
// team A, the next playersPerTeam to team B, and the remainder to the
// bench. No size validation happens here: with fewer than 2*playersPerTeam
// players the teams come out short, so callers must check first.
func (s *Service) SplitIntoTeams(players []model.Player, playersPerTeam int) Split {
	shuffled := s.Shuffle(players)

	cutA := min(playersPerTeam, len(shuffled))
	cutB := min(playersPerTeam*2, len(shuffled))

	return Split{
		TeamA: model.ClonePlayers(shuffled[:cutA]),
		TeamB: model.ClonePlayers(shuffled[cutA:cutB]),
		Bench: model.ClonePlayers(shuffled[cutB:]),
	}
}

// RotateTeams computes the next team/bench configuration after a match.
// The winning lineup stays; the losing slot is refilled from the bench.
//
// With enough bench players the rotation is FIFO: the head of the bench
// becomes the new opposing team and the losers join the back of the
// bench, behind anyone still waiting. With a short bench there is no way
// to fill a team without reusing losers, so bench+losers are shuffled
// together and dealt instead.
func (s *Service) RotateTeams(teamA, teamB, bench []model.Player, winner model.Side) Split {
	if len(bench) == 0 {
		return Split{
			TeamA: model.ClonePlayers(teamA),
			TeamB: model.ClonePlayers(teamB),
			Bench: []model.Player{},
		}
	}

	var winningTeam, losingTeam []model.Player
	if winner == model.SideA {
		winningTeam, losingTeam = teamA, teamB
	} else {
		winningTeam, losingTeam = teamB, teamA
	}
	playersPerTeam := len(losingTeam)

	var incoming, newBench []model.Player
	if len(bench) >= playersPerTeam {
		incoming = model.ClonePlayers(bench[:playersPerTeam])
		newBench = make([]model.Player, 0, len(bench)-playersPerTeam+len(losingTeam))
		newBench = append(newBench, bench[playersPerTeam:]...)
		newBench = append(newBench, losingTeam...)
	} else {
		pool := make([]model.Player, 0, len(bench)+len(losingTeam))
		pool = append(pool, bench...)
		pool = append(pool, losingTeam...)
		pool = s.Shuffle(pool)
		incoming = model.ClonePlayers(pool[:playersPerTeam])
		newBench = model.ClonePlayers(pool[playersPerTeam:])
	}

	if winner == model.SideA {
		return Split{
			TeamA: model.ClonePlayers(winningTeam),
			TeamB: incoming,
			Bench: newBench,
		}
	}
	return Split{
		TeamA: incoming,
		TeamB: model.ClonePlayers(winningTeam),
		Bench: newBench,
	}
}

// NewMatch wraps the two lineups into a fresh undecided match with
// snapshot copies of both teams.
func (s *Service) NewMatch(teamA, teamB []model.Player) model.Match {
	return model.Match{
		ID: model.MatchID(s.ident.NewID()),
		TeamA: model.Team{
			ID:      model.TeamAID,
			Name:    TeamAName,
			Players: model.ClonePlayers(teamA),
		},
		TeamB: model.Team{
			ID:      model.TeamBID,
			Name:    TeamBName,
			Players: model.ClonePlayers(teamB),
		},
		Winner:    nil,
		Timestamp: s.clock.Now().UnixMilli(),
	}
}
