package commands

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"urchat/internal/domain"
)

var (
	follow   bool
	interval time.Duration
)

// recv: fetch and decrypt queued messages; --follow keeps polling.
func recvCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recv",
		Short: "Fetch and decrypt your queued messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			record, err := appCtx.Profiles.Login(cmd.Context(), passphrase)
			if err != nil {
				return err
			}

			var since int64
			print := func(msgs []domain.DecryptedMessage) {
				for _, m := range msgs {
					fmt.Printf("[%s] %s: %s\n",
						time.Unix(m.Timestamp, 0).Format("15:04:05"), m.From, m.Plaintext)
					if m.Timestamp > since {
						since = m.Timestamp
					}
				}
			}

			msgs, err := appCtx.Messages.Receive(cmd.Context(), &record, passphrase, since)
			if err != nil {
				return err
			}
			print(msgs)
			if !follow {
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					msgs, err := appCtx.Messages.Receive(ctx, &record, passphrase, since)
					if err != nil {
						appCtx.Log.WithError(err).Warn("poll failed")
						continue
					}
					print(msgs)
				}
			}
		},
	}
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep polling for new messages")
	cmd.Flags().DurationVar(&interval, "interval", 3*time.Second, "poll interval with --follow")
	return cmd
}
