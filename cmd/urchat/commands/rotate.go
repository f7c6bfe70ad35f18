package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"urchat/internal/domain"
)

func rotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rotate",
		Short: "Retire your current keys and publish fresh ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			record, err := appCtx.Profiles.Login(cmd.Context(), passphrase)
			if err != nil {
				return err
			}

			rotateErr := appCtx.Rotation.Rotate(cmd.Context(), &record, appCtx.Namespace)
			if rotateErr != nil && !errors.Is(rotateErr, domain.ErrPublish) {
				return rotateErr
			}

			// The record has rotated even when publication failed; persist
			// it either way so the new private keys are never lost.
			if err := appCtx.Store.SaveProfile(passphrase, record); err != nil {
				return err
			}
			if rotateErr != nil {
				fmt.Printf("Keys rotated locally, but publishing failed: %v\n", rotateErr)
				fmt.Println("Run 'urchat rotate' again once the relay is reachable.")
				return nil
			}
			fmt.Println("Keys rotated and published.")
			return nil
		},
	}
}
