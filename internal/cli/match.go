package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match flow commands",
	}

	cmd.AddCommand(newMatchSplitCmd())
	cmd.AddCommand(newMatchWinnerCmd())
	cmd.AddCommand(newMatchNextCmd())

	return cmd
}

func newMatchSplitCmd() *cobra.Command {
	var playersPerTeam int

	cmd := &cobra.Command{
		Use:   "split <room-id>",
		Short: "Shuffle the pool into two teams and a bench",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]int{}
			if playersPerTeam > 0 {
				req["players_per_team"] = playersPerTeam
			}

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/split", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&playersPerTeam, "players-per-team", 0, "Players per team (default: server default)")

	return cmd
}

func newMatchWinnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "winner <room-id> <A|B>",
		Short: "Record the winner of the current match",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"winner": args[1]}

			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/winner", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newMatchNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <room-id>",
		Short: "Rotate teams and start the next match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post(fmt.Sprintf("/api/v1/rooms/%s/next", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
