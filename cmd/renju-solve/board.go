package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hailam/renju-solve/internal/renju"
)

// addBoardFlags registers the flags shared by every subcommand that needs
// a starting position: --board (inline text), --file (read from disk),
// or stdin if neither is given.
func addBoardFlags(cmd *cobra.Command, board, file *string) {
	cmd.Flags().StringVarP(board, "board", "b", "", `board text ("blacks/whites" point list, or a 15-line grid)`)
	cmd.Flags().StringVarP(file, "file", "f", "", "read board text from a file instead of --board")
}

func readBoardText(board, file *string) (string, error) {
	switch {
	case *board != "":
		return *board, nil
	case *file != "":
		data, err := os.ReadFile(*file)
		if err != nil {
			return "", fmt.Errorf("renju-solve: reading %s: %w", *file, err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("renju-solve: reading stdin: %w", err)
		}
		return string(data), nil
	}
}

func parsePlayer(s string) (renju.Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return renju.Black, nil
	case "white", "w":
		return renju.White, nil
	default:
		return 0, fmt.Errorf("renju-solve: unknown side %q (want black or white)", s)
	}
}

// printBoard renders the board with fatih/color so stones stand out on a
// terminal; highlight points (a solved move path) are marked in yellow.
func printBoard(sq *renju.Square, highlight renju.Points) {
	marks := make(map[renju.Point]int, len(highlight))
	for i, p := range highlight {
		marks[p] = i + 1
	}
	black := color.New(color.FgHiWhite, color.Bold)
	white := color.New(color.FgHiBlack, color.Bold)
	mark := color.New(color.FgYellow, color.Bold)

	for y := int(renju.BoardSize) - 1; y >= 0; y-- {
		fmt.Printf("%2d ", y+1)
		for x := uint8(0); x < renju.BoardSize; x++ {
			p := renju.Point{X: x, Y: uint8(y)}
			stone := sq.Stones(p)
			switch {
			case marks[p] != 0:
				mark.Printf(" %d", marks[p])
			case stone == nil:
				fmt.Print(" .")
			case *stone == renju.Black:
				black.Print(" o")
			default:
				white.Print(" x")
			}
		}
		fmt.Println()
	}
	fmt.Print("  ")
	for x := uint8(0); x < renju.BoardSize; x++ {
		fmt.Printf(" %c", 'A'+x)
	}
	fmt.Println()
}
