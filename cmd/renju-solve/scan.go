package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailam/renju-solve/internal/renju"
)

func newScanCmd() *cobra.Command {
	var (
		side        string
		board, file string
	)
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "list every matched row (two/sword/three/four/five/overline) for a side",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readBoardText(&board, &file)
			if err != nil {
				return err
			}
			sq, err := renju.ParseBoardText(text)
			if err != nil {
				return err
			}
			player, err := parsePlayer(side)
			if err != nil {
				return err
			}

			kinds := []renju.RowKind{renju.Two, renju.Sword, renju.Three, renju.Four, renju.Five, renju.Overline}
			if player == renju.White {
				kinds = kinds[:len(kinds)-1] // overline is a Black-only restriction
			}
			for _, kind := range kinds {
				rows := sq.Rows(player, kind)
				if len(rows) == 0 {
					continue
				}
				fmt.Printf("%s %s:\n", player, kind)
				for _, r := range rows {
					fmt.Printf("  %s-%s", r.Start, r.End)
					if eyes := r.Eyes(); len(eyes) > 0 {
						fmt.Printf(" eyes=%v", eyes)
					}
					fmt.Println()
				}
			}
			return nil
		},
	}
	addBoardFlags(cmd, &board, &file)
	cmd.Flags().StringVarP(&side, "side", "s", "black", "side to scan (black|white)")
	return cmd
}
