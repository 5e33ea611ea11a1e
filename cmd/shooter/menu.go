package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start Space Shooter at its title menu.

Use arrow keys or j/k to navigate, Enter to select.
After a run ends, you return to the menu to play again.

Examples:
  shooter menu
  shooter menu --fps 30 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, err := audio.Open(flagSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer sound.Close()

	title := gameID
	if g, err := registry.Create(gameID); err == nil {
		title = g.Title()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, gameID, title, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			game, err := registry.Create(gameID)
			if err != nil {
				return fmt.Errorf("creating game: %w", err)
			}
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			logger.Info("run started", "fps", cfg.TickRate, "difficulty", flagDifficulty)
			if err := tui.Run(game, cfg, tui.Options{
				Store:  store,
				Logger: logger,
				Sound:  sound,
				Player: playerName(),
			}); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		default:
			return nil
		}
	}
}
