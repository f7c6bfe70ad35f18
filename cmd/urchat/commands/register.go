package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"urchat/internal/domain"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username>",
		Short: "Create your profile and publish your public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			username := domain.Username(args[0])

			_, fp, err := appCtx.Profiles.Register(cmd.Context(), username, passphrase)
			if errors.Is(err, domain.ErrPublish) {
				fmt.Printf("Profile created, but publishing the public key failed: %v\n", err)
				fmt.Println("Run 'urchat rotate' once the relay is reachable to publish.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Profile created for %s.\nFingerprint: %s\n", username, fp)
			return nil
		},
	}
}
