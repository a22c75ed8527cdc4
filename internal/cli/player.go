package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerJoinCmd())
	cmd.AddCommand(newPlayerLockCmd())
	cmd.AddCommand(newPlayerInfoCmd())
	cmd.AddCommand(newPlayerListCmd())

	return cmd
}

func newPlayerJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <game-id> <player-name>",
		Short: "Join a game as the second player",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_name": args[1]}
			var result JoinGameResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/join", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerLockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lock <game-id> <player-id> <code>",
		Short: "Lock your secret 4-digit code",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"secret_code": args[2]}
			var result LockCodeResult

			path := fmt.Sprintf("/api/v1/games/%s/players/%s/lock", args[0], args[1])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <game-id> <player-id>",
		Short: "Show a player's public state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerInfo

			path := fmt.Sprintf("/api/v1/games/%s/players/%s", args[0], args[1])
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game-id>",
		Short: "Show both players of a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Players

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/players", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
