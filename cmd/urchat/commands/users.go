package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List users known to the directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appCtx.Directory.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if len(users) == 0 {
				fmt.Println("No users registered yet.")
				return nil
			}
			for _, u := range users {
				fmt.Println(u)
			}
			return nil
		},
	}
}
