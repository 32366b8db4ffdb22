package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/games/classic"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/web"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSSHAddr     string
	flagHTTPAddr    string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeGame   string
	flagServeDiff   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve games over SSH and replays over HTTP",
	Long: `Start an SSH server where every connection plays its own game, and
optionally a read-only HTTP API over the recorded replays.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

HTTP endpoints:
  GET /healthz
  GET /replays?game=<id>&limit=<n>
  GET /replays/{id}?verify=1

Examples:
  snake serve                              # SSH on :23234
  snake serve --http :8080                 # SSH and HTTP
  snake serve --ssh "" --http :8080        # HTTP only
  snake serve --game snake_fixed

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (empty disables SSH)")
	f.StringVar(&flagHTTPAddr, "http", "", "HTTP listen address for the replay API (empty disables HTTP)")
	f.StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	f.DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect SSH sessions idle for this long")
	f.StringVar(&flagServeGame, "game", classic.IDClassic, "Preset played by SSH sessions")
	f.StringVar(&flagServeDiff, "difficulty", "", "Difficulty preset for SSH sessions: easy, normal, hard")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagSSHAddr == "" && flagHTTPAddr == "" {
		return errors.New("nothing to serve: both --ssh and --http are empty")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		if flagHTTPAddr != "" {
			return err
		}
		logger.Warn("could not open replay database, sessions will not be recorded", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		cfg, err := resolveConfig(flagServeGame, flagServeDiff)
		if err != nil {
			return err
		}
		sshCfg := tui.DefaultSSHServerConfig()
		sshCfg.Address = flagSSHAddr
		sshCfg.HostKeyPath = flagHostKey
		sshCfg.IdleTimeout = flagIdleTimeout
		sshCfg.GameID = flagServeGame
		sshCfg.Config = cfg
		sshCfg.TickRate = flagFPS

		server, err := tui.NewSSHServer(sshCfg, store, logger)
		if err != nil {
			return err
		}
		g.Go(func() error { return server.ListenAndServe(ctx) })
	}

	if flagHTTPAddr != "" {
		api := web.NewServer(flagHTTPAddr, store, logger)
		g.Go(func() error { return api.ListenAndServe(ctx) })
	}

	logger.Info("press Ctrl+C to stop")
	return g.Wait()
}
