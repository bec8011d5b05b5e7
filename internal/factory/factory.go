package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/clock"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/ident"
	"github.com/futevolucao/futevolucao-go/internal/dependencies/random"
	"github.com/futevolucao/futevolucao-go/internal/metrics"
	"github.com/futevolucao/futevolucao-go/internal/services/game"
	"github.com/futevolucao/futevolucao-go/internal/services/room"
	"github.com/futevolucao/futevolucao-go/internal/services/teams"
	"github.com/futevolucao/futevolucao-go/internal/storage"
	filestorage "github.com/futevolucao/futevolucao-go/internal/storage/file"
	"github.com/futevolucao/futevolucao-go/internal/storage/memory"
	redisstorage "github.com/futevolucao/futevolucao-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeFile   = "file"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Ident  ident.Generator

	// Services
	TeamsService   *teams.Service
	RoomService    *room.Service
	GameController *game.Controller

	Metrics *metrics.Metrics
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "file")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// StateDir is the room document directory (required if StorageType is "file")
	StateDir string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	case StorageTypeFile:
		fileStore, err := filestorage.New(cfg.StateDir)
		if err != nil {
			return nil, err
		}
		store = fileStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'file'")
	}

	clk := clock.New()
	rnd := random.New()
	idg := ident.New(clk, rnd)

	return NewWithDependencies(store, clk, rnd, idg, logger), nil
}

// NewWithDependencies creates an App with the given dependencies.
// Tests use this with mocked clock/random/ident for determinism.
func NewWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, idg ident.Generator, logger *slog.Logger) *App {
	m := metrics.New()
	teamsService := teams.New(rnd, idg, clk)
	roomService := room.New(store, clk, rnd, logger)
	gameController := game.NewController(store, roomService, teamsService, idg, clk, logger, m)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		Ident:          idg,
		TeamsService:   teamsService,
		RoomService:    roomService,
		GameController: gameController,
		Metrics:        m,
	}
}
