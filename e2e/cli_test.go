package e2e_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/futevolucao/futevolucao-go/internal/api"
	"github.com/futevolucao/futevolucao-go/internal/factory"
	"github.com/futevolucao/futevolucao-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "futevo-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/futevo")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) runWithToken(token string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token", token,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := testutil.NopLogger()

	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		RoomService:    app.RoomService,
		GameController: app.GameController,
		Metrics:        app.Metrics,
	})

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		addr: serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing

type createRoomResponse struct {
	RoomID     string `json:"room_id"`
	OwnerToken string `json:"owner_token"`
}

type playerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type matchResponse struct {
	ID    string `json:"id"`
	TeamA struct {
		Name    string           `json:"name"`
		Players []playerResponse `json:"players"`
	} `json:"teamA"`
	TeamB struct {
		Name    string           `json:"name"`
		Players []playerResponse `json:"players"`
	} `json:"teamB"`
	Winner *string `json:"winner"`
}

type gameStateResponse struct {
	Players      []playerResponse `json:"players"`
	TeamA        []playerResponse `json:"teamA"`
	TeamB        []playerResponse `json:"teamB"`
	Bench        []playerResponse `json:"bench"`
	CurrentMatch *matchResponse   `json:"currentMatch"`
	MatchHistory []matchResponse  `json:"matchHistory"`
}

type roomResponse struct {
	Room struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"room"`
	IsOwner bool `json:"is_owner"`
}

type healthResponse struct {
	Status string `json:"status"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_RoomCommands(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create room; the owner token lands in the token file
	output, err := cli.run("room", "create", "Tuesday Footy")
	require.NoError(t, err, "output: %s", output)

	var created createRoomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	assert.NotEmpty(t, created.RoomID)
	assert.NotEmpty(t, created.OwnerToken)

	savedToken, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, created.OwnerToken, string(savedToken))

	// Get room using the saved token
	output, err = cli.run("room", "get", created.RoomID)
	require.NoError(t, err, "output: %s", output)

	var room roomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &room))
	assert.Equal(t, "Tuesday Footy", room.Room.Name)
	assert.True(t, room.IsOwner)

	// A fresh runner without the token is not the owner
	other := &cliRunner{
		binaryPath: cli.binaryPath,
		serverURL:  cli.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token2"),
	}
	output, err = other.run("room", "get", created.RoomID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &room))
	assert.False(t, room.IsOwner)
}

func TestCLI_FullMatchFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("room", "create", "Footy")
	require.NoError(t, err, "output: %s", output)
	var created createRoomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	roomID := created.RoomID
	token := created.OwnerToken

	// Add five players
	var gs gameStateResponse
	for i := 1; i <= 5; i++ {
		output, err = cli.runWithToken(token, "player", "add", roomID, fmt.Sprintf("Player %d", i))
		require.NoError(t, err, "output: %s", output)
	}
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	require.Len(t, gs.Players, 5)

	// Split into teams of two
	output, err = cli.runWithToken(token, "match", "split", roomID, "--players-per-team", "2")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	assert.Len(t, gs.TeamA, 2)
	assert.Len(t, gs.TeamB, 2)
	assert.Len(t, gs.Bench, 1)
	require.NotNil(t, gs.CurrentMatch)
	assert.Nil(t, gs.CurrentMatch.Winner)

	// Team A wins
	output, err = cli.runWithToken(token, "match", "winner", roomID, "A")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	require.NotNil(t, gs.CurrentMatch.Winner)
	assert.Equal(t, "A", *gs.CurrentMatch.Winner)
	assert.Len(t, gs.MatchHistory, 1)

	// Rotate to the next match
	output, err = cli.runWithToken(token, "match", "next", roomID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	assert.Len(t, gs.TeamA, 2)
	assert.Len(t, gs.TeamB, 2)
	assert.Nil(t, gs.CurrentMatch.Winner)

	// State is readable without a token
	output, err = cli.run("room", "state", roomID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	assert.Len(t, gs.Players, 5)

	// Reset keeps the pool
	output, err = cli.runWithToken(token, "room", "reset", roomID)
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &gs))
	assert.Len(t, gs.Players, 5)
	assert.Empty(t, gs.TeamA)
	assert.Nil(t, gs.CurrentMatch)
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Get non-existent room
	output, err := cli.run("room", "get", "no-such-room")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	// Mutations without the owner token are refused
	output, err = cli.run("room", "create", "Footy")
	require.NoError(t, err, "output: %s", output)
	var created createRoomResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	other := &cliRunner{
		binaryPath: cli.binaryPath,
		serverURL:  cli.serverURL,
		tokenFile:  filepath.Join(t.TempDir(), "token2"),
	}
	output, err = other.run("player", "add", created.RoomID, "Intruder")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "owner")
}
