package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jtoman/codeduel/internal/api"
	"github.com/jtoman/codeduel/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "codeduel-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/codeduel")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
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

	// Create application
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
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
type createGameResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

type joinGameResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Status   string `json:"status"`
}

type lockCodeResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
	Ready    bool   `json:"ready"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type guessResponse struct {
	Code             string  `json:"code"`
	CorrectDigits    int     `json:"correct_digits"`
	CorrectPositions int     `json:"correct_positions"`
	IsWinner         bool    `json:"is_winner"`
	NextTurn         *string `json:"next_turn"`
	WinnerID         *string `json:"winner_id"`
}

type gameStatusResponse struct {
	ID          string  `json:"id"`
	Status      string  `json:"status"`
	CurrentTurn *string `json:"current_turn"`
	WinnerID    *string `json:"winner_id"`
	TurnCount   int     `json:"turn_count"`
}

type historyResponse struct {
	GameID       string `json:"game_id"`
	TotalGuesses int    `json:"total_guesses"`
	Guesses      []struct {
		GuesserID  string `json:"guesser_id"`
		Guesser    string `json:"guesser"`
		Code       string `json:"code"`
		TurnNumber int    `json:"turn_number"`
	} `json:"guesses"`
}

func TestCLIFullDuel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	// Alice creates a game
	out, err := cli.run("game", "create", "Alice")
	require.NoError(t, err, out)
	var created createGameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.NotEmpty(t, created.GameID)
	assert.Equal(t, "waiting", created.Status)

	// Bob joins
	out, err = cli.run("player", "join", created.GameID, "Bob")
	require.NoError(t, err, out)
	var joined joinGameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &joined))
	require.NotEmpty(t, joined.PlayerID)

	// Both lock codes
	out, err = cli.run("player", "lock", created.GameID, created.PlayerID, "1234")
	require.NoError(t, err, out)
	var locked lockCodeResponse
	require.NoError(t, json.Unmarshal([]byte(out), &locked))
	assert.Equal(t, "waiting", locked.Status)
	assert.Equal(t, created.PlayerID, locked.PlayerID)
	assert.True(t, locked.Ready)

	out, err = cli.run("player", "lock", created.GameID, joined.PlayerID, "5678")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &locked))
	assert.Equal(t, "in_progress", locked.Status)

	// Alice guesses wrong, Bob wins
	out, err = cli.run("play", "guess", created.GameID, created.PlayerID, "0000")
	require.NoError(t, err, out)
	var guess guessResponse
	require.NoError(t, json.Unmarshal([]byte(out), &guess))
	assert.False(t, guess.IsWinner)
	require.NotNil(t, guess.NextTurn)
	assert.Equal(t, joined.PlayerID, *guess.NextTurn)

	out, err = cli.run("play", "guess", created.GameID, joined.PlayerID, "1234")
	require.NoError(t, err, out)
	require.NoError(t, json.Unmarshal([]byte(out), &guess))
	assert.True(t, guess.IsWinner)
	assert.Equal(t, 4, guess.CorrectPositions)

	// Final status shows the winner
	out, err = cli.run("game", "status", created.GameID)
	require.NoError(t, err, out)
	var status gameStatusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.Equal(t, "completed", status.Status)
	require.NotNil(t, status.WinnerID)
	assert.Equal(t, joined.PlayerID, *status.WinnerID)
	assert.Nil(t, status.CurrentTurn)

	// History records both guesses
	out, err = cli.run("play", "history", created.GameID)
	require.NoError(t, err, out)
	var history historyResponse
	require.NoError(t, json.Unmarshal([]byte(out), &history))
	require.Len(t, history.Guesses, 2)
	assert.Equal(t, 2, history.TotalGuesses)
	assert.Equal(t, 1, history.Guesses[0].TurnNumber)
	assert.Equal(t, created.PlayerID, history.Guesses[0].GuesserID)
	assert.Equal(t, "Alice", history.Guesses[0].Guesser)
	assert.Equal(t, "Bob", history.Guesses[1].Guesser)

	// Rejected guess after completion surfaces the API error
	out, err = cli.run("play", "guess", created.GameID, created.PlayerID, "0000")
	require.Error(t, err)
	assert.Contains(t, out, "GAME_ALREADY_COMPLETED")

	// Delete the game
	out, err = cli.run("game", "delete", created.GameID)
	require.NoError(t, err, out)

	out, err = cli.run("game", "status", created.GameID)
	require.Error(t, err)
	assert.Contains(t, out, "GAME_NOT_FOUND")
}

func TestCLIErrorPaths(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test in short mode")
	}

	srv := startTestServer(t)
	defer srv.shutdown()
	cli := newCLIRunner(t, srv.addr)

	// Unknown game
	out, err := cli.run("game", "status", "game_missing")
	require.Error(t, err)
	assert.Contains(t, out, "GAME_NOT_FOUND")

	// Bad code format
	out, err = cli.run("game", "create", "Alice")
	require.NoError(t, err, out)
	var created createGameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))

	out, err = cli.run("player", "lock", created.GameID, created.PlayerID, "12ab")
	require.Error(t, err)
	assert.Contains(t, out, "INVALID_CODE_FORMAT")

	// Third player cannot join
	_, err = cli.run("player", "join", created.GameID, "Bob")
	require.NoError(t, err)
	out, err = cli.run("player", "join", created.GameID, "Carol")
	require.Error(t, err)
	assert.Contains(t, out, "GAME_FULL")
}
