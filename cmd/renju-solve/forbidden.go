package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailam/renju-solve/internal/renju"
)

func newForbiddenCmd() *cobra.Command {
	var board, file string
	cmd := &cobra.Command{
		Use:   "forbidden",
		Short: "list Black's forbidden points (double-three, double-four, overline)",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readBoardText(&board, &file)
			if err != nil {
				return err
			}
			sq, err := renju.ParseBoardText(text)
			if err != nil {
				return err
			}

			var found renju.Points
			for x := uint8(0); x < renju.BoardSize; x++ {
				for y := uint8(0); y < renju.BoardSize; y++ {
					p := renju.Point{X: x, Y: y}
					if sq.Stones(p) != nil {
						continue
					}
					if kind, ok := renju.Forbidden(sq, p); ok {
						log.Debug().Stringer("point", p).Stringer("kind", kind).Msg("forbidden")
						found = append(found, p)
					}
				}
			}
			if len(found) == 0 {
				fmt.Println("no forbidden points")
				return nil
			}
			fmt.Printf("forbidden for Black: %s\n", found)
			printBoard(sq, found)
			return nil
		},
	}
	addBoardFlags(cmd, &board, &file)
	return cmd
}
