package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagLimit       int
	flagRecent      bool
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs, or the latest ones with --recent.

Examples:
  shooter scores
  shooter scores --limit 20
  shooter scores --recent
  shooter scores -i
  shooter scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s runs.\n", title)
		return nil
	}

	if flagInteractive {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, title, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	var runs []storage.Run
	heading := "High Scores"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	fmt.Println(headingStyle.Render(fmt.Sprintf("%s - %s", heading, title)))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'shooter play' to set the first high score!")
		return nil
	}

	fmt.Println(renderRuns(runs))

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Total kills: %d  Played: %s\n",
		stats.HighScore, stats.GamesCount, stats.TotalKills, stats.TotalPlayTime.Round(time.Second))
	return nil
}

// renderRuns formats runs as a bordered table.
func renderRuns(runs []storage.Run) string {
	rows := make([][]string, len(runs))
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Kills),
			r.Duration.Round(time.Second).String(),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("Rank", "Player", "Score", "Kills", "Time", "Date").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}
