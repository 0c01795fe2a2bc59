package main

import (
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagFrontend string
	flagConfig   string
	flagHoldMS   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the local terminal.

Controls:
  Left/A, Right/D  - Move
  Space/Up         - Fire (one shot per press)
  P/Esc            - Pause/resume
  R                - Restart the round
  Y/N              - Answer "Play again?" after clearing the formation
  Q/Ctrl+C         - Quit

Terminals do not report key releases, so a key counts as held for
--hold-ms after each press or auto-repeat.

Examples:
  invaders play
  invaders play --frontend tcell
  invaders play --config ./my-invaders.yaml
  invaders play --hold-ms 200 --log-file invaders.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "tui", "Terminal frontend (see 'invaders frontends')")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagHoldMS, "hold-ms", 0, "Override how long a key counts as held, in milliseconds")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	frontend, err := registry.Create(flagFrontend)
	if err != nil {
		return fmt.Errorf("%w (run 'invaders frontends' to see available frontends)", err)
	}

	gameCfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return err
	}
	if flagHoldMS > 0 {
		gameCfg.Input.HoldMS = flagHoldMS
	}

	logger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := registry.PlayOptions{
		Game: gameCfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}

	// Open run history; the game still works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
		opts.Recorder = store.Recorder(localUser())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting game", "frontend", frontend.ID(), "fps", flagFPS)
	if err := frontend.Play(ctx, opts); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// localUser names the player for locally recorded runs.
func localUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

