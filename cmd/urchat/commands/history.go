package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"urchat/internal/domain"
)

var (
	historyLimit int
	backupPath   string
	backupPass   string
	restorePath  string
)

// history [peer]: show the local encrypted log, or back it up / restore it.
func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [peer]",
		Short: "Show, back up or restore your local message log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			record, err := appCtx.Profiles.Login(cmd.Context(), passphrase)
			if err != nil {
				return err
			}

			switch {
			case backupPath != "":
				if err := appCtx.History.Backup(passphrase, record.Username, backupPath, backupPass); err != nil {
					return err
				}
				fmt.Printf("History backed up to %s\n", backupPath)
				return nil
			case restorePath != "":
				if err := appCtx.History.Restore(passphrase, record.Username, restorePath, backupPass); err != nil {
					return err
				}
				fmt.Println("History restored.")
				return nil
			}

			var peer domain.Username
			if len(args) == 1 {
				peer = domain.Username(args[0])
			}
			msgs, err := appCtx.History.List(passphrase, record.Username, peer, historyLimit)
			if err != nil {
				return err
			}
			for _, m := range msgs {
				arrow := "->"
				if m.Direction == domain.MessageReceived {
					arrow = "<-"
				}
				fmt.Printf("[%s] %s %s %s: %s\n",
					time.Unix(m.Timestamp, 0).Format("2006-01-02 15:04:05"),
					m.Sender, arrow, m.Recipient, m.Content)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&historyLimit, "limit", 50, "maximum messages to show (0 for all)")
	cmd.Flags().StringVar(&backupPath, "backup", "", "write an encrypted backup to this path")
	cmd.Flags().StringVar(&restorePath, "restore", "", "replace the log from a backup at this path")
	cmd.Flags().StringVar(&backupPass, "backup-passphrase", "", "separate passphrase for the backup file")
	cmd.MarkFlagsMutuallyExclusive("backup", "restore")
	return cmd
}
