package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Display high scores per board size (e.g. 20x15).

In a terminal this opens an interactive scoreboard; tab switches boards.
With --plain, or when output is not a terminal, the top scores are printed.

--run prints a single game by its run id (logged by 'snake demo --save').
--clear deletes the scores of the given board, or of every board.

Examples:
  snake scores
  snake scores 20x15
  snake scores --plain --limit 5
  snake scores --run 0b6c2f1e-8d4e-4a57-9a51-3f1c2d9e7b10
  snake scores 20x15 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().Bool("plain", false, "Print scores instead of opening the scoreboard")
	scoresCmd.Flags().Int("limit", 10, "Number of scores per board in plain output")
	scoresCmd.Flags().String("run", "", "Show the game with this run id")
	scoresCmd.Flags().Bool("clear", false, "Delete scores for the board (all boards if none given)")
}

func runScores(cmd *cobra.Command, args []string) error {
	v, err := bindSettings(cmd)
	if err != nil {
		return err
	}

	board := ""
	if len(args) == 1 {
		board = args[0]
	}

	store, err := storage.Open(v.GetString("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	if runID := v.GetString("run"); runID != "" {
		return printRun(cmd.OutOrStdout(), store, runID)
	}
	if v.GetBool("clear") {
		return clearScores(cmd.OutOrStdout(), store, board)
	}

	fd := int(os.Stdout.Fd())
	if !v.GetBool("plain") && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, board, width, height)
	}

	boards := []string{board}
	if board == "" {
		if boards, err = store.Boards(); err != nil {
			return err
		}
	}
	return printScores(cmd.OutOrStdout(), store, boards, v.GetInt("limit"))
}

// printScores writes one table per board.
func printScores(w io.Writer, store *storage.Store, boards []string, limit int) error {
	if len(boards) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	titleStyle := lipgloss.NewStyle().Bold(true)
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	for i, board := range boards {
		scores, err := store.TopScores(board, limit)
		if err != nil {
			return err
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("High Scores - Board %s", board)))

		if len(scores) == 0 {
			fmt.Fprintln(w, "No scores recorded yet.")
			continue
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Rank", "Score", "Length", "Player", "Date").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, r := range tui.ScoreRows(scores) {
			t.Row(r...)
		}
		fmt.Fprintln(w, t.Render())

		if stats, err := store.GetBoardStats(board); err == nil {
			fmt.Fprintf(w, "Best: %d  Games: %d  Avg: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}
	return nil
}

// printRun writes the details of one recorded game.
func printRun(w io.Writer, store *storage.Store, runID string) error {
	entry, err := store.ScoreByRunID(runID)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no game with run id %q", runID)
	}

	player := entry.Player
	if player == "" {
		player = "local"
	}
	fmt.Fprintf(w, "Run:    %s\n", entry.RunID)
	fmt.Fprintf(w, "Board:  %s\n", entry.Board)
	fmt.Fprintf(w, "Player: %s\n", player)
	fmt.Fprintf(w, "Score:  %d (length %d, %d ticks)\n", entry.Score, entry.Length, entry.Ticks)
	fmt.Fprintf(w, "Seed:   %d\n", entry.Seed)
	fmt.Fprintf(w, "Date:   %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

// clearScores deletes the scores of board, or of every board when board is empty.
func clearScores(w io.Writer, store *storage.Store, board string) error {
	boards := []string{board}
	if board == "" {
		var err error
		if boards, err = store.Boards(); err != nil {
			return err
		}
	}
	for _, b := range boards {
		if err := store.ClearScores(b); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared scores for board %s\n", b)
	}
	return nil
}
