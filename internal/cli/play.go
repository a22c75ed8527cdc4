package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "In-game commands",
	}

	cmd.AddCommand(newPlayGuessCmd())
	cmd.AddCommand(newPlayHistoryCmd())
	cmd.AddCommand(newPlayTurnCmd())
	cmd.AddCommand(newPlayWatchCmd())

	return cmd
}

func newPlayGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <game-id> <player-id> <code>",
		Short: "Guess the opponent's code",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"player_id": args[1],
				"code":      args[2],
			}
			var result GuessResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guess", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayHistoryCmd() *cobra.Command {
	var playerID string

	cmd := &cobra.Command{
		Use:   "history <game-id>",
		Short: "Show the guess history of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/games/%s/guesses", args[0])
			if playerID != "" {
				path += "?player_id=" + playerID
			}

			var result GuessHistory
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Only show guesses by this player id")
	return cmd
}

func newPlayTurnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "turn <game-id>",
		Short: "Show whose turn it is",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result TurnInfo

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/turn", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch <game-id>",
		Short: "Poll a game until it completes, printing turn changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/games/%s/turn", args[0])
			out := NewOutput(cfg.Output)

			var lastTurn string
			var lastCount = -1
			for {
				var info TurnInfo
				if err := client.Get(path, &info); err != nil {
					return err
				}

				turn := ""
				if info.CurrentTurn != nil {
					turn = *info.CurrentTurn
				}
				if turn != lastTurn || info.TurnCount != lastCount {
					out.Print(info)
					lastTurn = turn
					lastCount = info.TurnCount
				}

				if info.Status == "completed" {
					var status GameStatus
					if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &status); err != nil {
						return err
					}
					out.Print(status)
					return nil
				}

				time.Sleep(interval)
			}
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Poll interval")
	return cmd
}
