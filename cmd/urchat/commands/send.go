package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"urchat/internal/domain"
)

// send <peer> <message>: encrypt and send a message to <peer>.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer> <message>",
		Short: "Encrypt and send a message to a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			peer := domain.Username(args[0])

			record, err := appCtx.Profiles.Login(cmd.Context(), passphrase)
			if err != nil {
				return err
			}
			if appCtx.Rotation.RotationDue(&record, appCtx.Namespace, time.Now()) {
				fmt.Println("Note: your keys are stale; consider running 'urchat rotate'.")
			}

			if err := appCtx.Messages.Send(cmd.Context(), &record, passphrase, peer, args[1]); err != nil {
				return err
			}
			fmt.Println("sent")
			return nil
		},
	}
}
