package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hailam/renju-solve/internal/mate"
	"github.com/hailam/renju-solve/internal/renju"
)

func newSolveCmd() *cobra.Command {
	var (
		turn        string
		depth       uint8
		mode        string
		board, file string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "search for a forced win (VCF or VCT) from a position",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readBoardText(&board, &file)
			if err != nil {
				return err
			}
			sq, err := renju.ParseBoardText(text)
			if err != nil {
				return err
			}
			player, err := parsePlayer(turn)
			if err != nil {
				return err
			}

			alreadyWon, err := renju.ValidatePosition(sq, player)
			if err != nil {
				return err
			}
			if alreadyWon {
				fmt.Println("already won: a four is already on the board")
				return nil
			}

			lastMove, last2Move := renju.ChooseLastMoves(sq, player)
			g := renju.NewGame(sq, player, lastMove, last2Move)

			log.Debug().Str("mode", mode).Uint8("depth", depth).Str("turn", player.String()).Msg("solving")

			var (
				solved bool
				path   renju.Points
			)
			switch mode {
			case "vcf":
				solver := mate.NewVCFSolver()
				m, ok := solver.Solve(g, depth)
				solved = ok
				if ok {
					path = m.Path
				}
			case "vct":
				solver := mate.NewSearcher()
				solver.OnProgress = func(limit uint8, nodes int) {
					log.Debug().Uint8("limit", limit).Int("tableEntries", nodes).Msg("vct round")
				}
				m, ok := solver.Solve(g, depth)
				solved = ok
				if ok {
					path = m.Path
				}
			default:
				return fmt.Errorf("renju-solve: unknown mode %q (want vcf or vct)", mode)
			}

			if !solved {
				fmt.Printf("no forced win found for %s within %d attacking moves\n", player, depth)
				return nil
			}
			fmt.Printf("forced win for %s: %s\n", player, path)
			printBoard(sq, path)
			return nil
		},
	}
	addBoardFlags(cmd, &board, &file)
	cmd.Flags().StringVarP(&turn, "turn", "t", "black", "side to move (black|white)")
	cmd.Flags().Uint8VarP(&depth, "depth", "d", 8, "maximum search depth in attacking moves")
	cmd.Flags().StringVarP(&mode, "mode", "m", "vct", "search mode (vcf|vct)")
	return cmd
}
