package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check relay and directory connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Directory.Ping(cmd.Context()); err != nil {
				return fmt.Errorf("relay unreachable: %w", err)
			}
			fmt.Println("ok")
			return nil
		},
	}
}
