package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bft-labs/pushcast"
	"github.com/bft-labs/pushcast/internal/cliconfig"
	logAdapter "github.com/bft-labs/pushcast/pkg/log"
)

var errPushFailed = errors.New("push failed")

func newSendCmd(cfg *cliconfig.Config, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a broadcast push",
		Long: `Send a broadcast push to every device of the app.

Without --alert the default alert text is sent. --silent sends only the
badge and content-available flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateSend(); err != nil {
				return err
			}
			log.Debug().Interface("config", cfg.Redacted()).Msg("configuration")

			client := pushcast.New(pushcast.Config{
				ServiceURL:  cfg.ServiceURL,
				LogFile:     cfg.LogFile,
				HTTPTimeout: cfg.HTTPTimeout,
				Logger:      logAdapter.NewZerologAdapterWithLogger(log),
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := client.Send(ctx, cfg.AppName, cfg.AppKey, cfg.MasterSecret, cfg.EffectiveAlertText())
			switch {
			case out.Succeeded():
				log.Info().Str("app", cfg.AppName).Str("log_file", client.LogFile()).Msg("push sent")
				return nil
			case out.TransportFailed():
				return errPushFailed
			default:
				return fmt.Errorf("%w: HTTP %d", errPushFailed, out.StatusCode)
			}
		},
	}

	cmd.Flags().StringVar(&cfg.AppName, "app-name", cfg.AppName, "app label written to the push log")
	cmd.Flags().StringVar(&cfg.AppKey, "app-key", cfg.AppKey, "Urban Airship app key")
	cmd.Flags().StringVar(&cfg.MasterSecret, "master-secret", cfg.MasterSecret, "Urban Airship app master secret")
	cmd.Flags().StringVar(&cfg.AlertText, "alert", cfg.AlertText, "alert text (default \""+pushcast.DefaultAlertText+"\")")
	cmd.Flags().BoolVar(&cfg.Silent, "silent", cfg.Silent, "send without alert text")
	cmd.Flags().DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "HTTP timeout (0 means none)")

	cmd.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "broadcast endpoint (override only for testing)")
	if err := cmd.Flags().MarkHidden("service-url"); err != nil {
		log.Info().Err(err).Msg("failed to hide service-url flag")
	}

	return cmd
}
