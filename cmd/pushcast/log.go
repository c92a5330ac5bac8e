package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bft-labs/pushcast/internal/cliconfig"
	"github.com/bft-labs/pushcast/pkg/pushlog"
)

func newLogCmd(cfg *cliconfig.Config) *cobra.Command {
	var follow bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Print the push log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if follow {
				ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return pushlog.Follow(ctx, cfg.LogFile, out)
			}
			return printLog(cfg.LogFile, out)
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep printing new entries")
	return cmd
}

func printLog(path string, w io.Writer) error {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("no push log at %s", path)
	}
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(w, f)
	return err
}
