package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/pushcast/internal/cliconfig"
)

const longHelp = `
Send an Urban Airship broadcast push and keep a plain-text log of every attempt.

Each push that reaches the service appends a block to the push log
(Elsevier_JAT_Push_Log.txt in the working directory by default).
Configure via file, env (PUSHCAST_*), or flags.
`

var exampleUsage = strings.TrimSpace(`
  pushcast send --app-name Journal --app-key <key> --master-secret <secret>
  pushcast send --app-name Journal --alert "Volume 12 is out"
  pushcast send --app-name Journal --silent
  pushcast log --follow
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := cliconfig.Logger()
	if err := newRootCmd(log).Execute(); err != nil {
		log.Error().Err(err).Msg("pushcast")
		os.Exit(1)
	}
}

func newRootCmd(log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "pushcast",
		Short:         "Send Urban Airship broadcast pushes",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg, cfgPath)
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.pushcast/config.toml)")
	root.PersistentFlags().StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "push log file")

	root.AddCommand(newSendCmd(&cfg, log), newLogCmd(&cfg))
	return root
}

// loadConfig layers the config file and PUSHCAST_* variables under the
// flags that were set explicitly.
func loadConfig(cmd *cobra.Command, cfg *cliconfig.Config, cfgPath string) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}
