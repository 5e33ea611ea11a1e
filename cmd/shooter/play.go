package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run of Space Shooter.

Controls:
  Left/A, Right/D   - Move
  Space/Up/W        - Fire
  P                 - Pause
  R                 - Restart (after game over)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Five lives, slower and rarer enemies
  normal - The configured values
  hard   - Two lives, faster and more frequent enemies
  fixed  - Built-in defaults, ignoring any config file

Examples:
  shooter play
  shooter play --difficulty easy
  shooter play --config ./my-shooter.yaml
  shooter play --sound --log-file ./shooter.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by commands that start runs.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

// applyGameFlags checks --config and --difficulty and hands them to the game.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadShooter(flagConfig); err != nil {
			return err
		}
	}
	shooter.SetConfigPath(flagConfig)
	shooter.SetDifficultyPreset(flagDifficulty)
	return nil
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound, err := audio.Open(flagSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	defer sound.Close()

	cfg := runtimeConfig()
	logger.Info("run started", "fps", cfg.TickRate, "difficulty", flagDifficulty)

	if err := tui.Run(game, cfg, tui.Options{
		Store:  store,
		Logger: logger,
		Sound:  sound,
		Player: playerName(),
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
