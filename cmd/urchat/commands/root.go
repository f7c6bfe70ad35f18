package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"urchat/internal/app"
)

var (
	home       string
	passphrase string
	redisAddr  string
	relayURL   string
	verbose    bool

	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "urchat",
		Short: "End-to-end encrypted chat CLI",
		Long:  "urchat - your words, your keys, your world.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".urchat")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg := app.Config{
				Home:      home,
				RedisAddr: redisAddr,
				RelayURL:  relayURL,
				Verbose:   verbose,
			}.FromEnv()

			wire, err := app.NewWire(cfg)
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.urchat)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting your profile")
	root.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address (e.g. 127.0.0.1:6379)")
	root.PersistentFlags().StringVar(&relayURL, "relay", "", "relay daemon base URL (e.g. http://127.0.0.1:8080)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		registerCmd(),
		fingerprintCmd(),
		rotateCmd(),
		sendCmd(),
		recvCmd(),
		historyCmd(),
		usersCmd(),
		pingCmd(),
	)
	return root.Execute()
}
