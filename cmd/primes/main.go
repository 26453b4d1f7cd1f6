package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/primes/internal/app"
	"github.com/bft-labs/primes/internal/cliconfig"
	"github.com/bft-labs/primes/pkg/log"
	"github.com/bft-labs/primes/pkg/sieve"
)

const longHelp = `Check a number for primality, or list the primes in a range.

  primes N      prints "Is prime" or "Not prime"
  primes A B    prints every prime between A and B (inclusive, either order)

Arguments must be non-negative base-10 integers below 2^64. Any other
number of arguments does nothing.

Configuration is read from $HOME/.primes/config.toml, then PRIMES_*
environment variables, then flags (highest precedence).`

var exampleUsage = strings.TrimSpace(`
  primes 97
  primes 10 30
  primes --count 0 1000000
  primes --separator=$'\n' 1000 1100
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "primes [N | A B]",
		Short:         "Check a number for primality or list the primes in a range",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
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
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return fmt.Errorf("load env: %w", err)
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			l, err := cliconfig.NewLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = l
			logger.Debug().Interface("config", cfg).Msg("configuration")

			adapter := log.NewZerologAdapter(logger)
			s := sieve.New(
				sieve.WithMaxCandidates(cfg.MaxCandidates),
				sieve.WithLogger(adapter),
			)

			c := app.NewCommand(app.CommandConfig{
				Separator: cfg.Separator,
				Count:     cfg.Count,
			}, s, adapter, cmd.OutOrStdout(), cmd.ErrOrStderr())
			return c.Run(args)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.primes/config.toml)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (trace, debug, info, warn, error)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (console or json)")
	root.Flags().Uint64Var(&cfg.MaxCandidates, "max-candidates", cfg.MaxCandidates, "maximum number of candidates a range may span")
	root.Flags().StringVar(&cfg.Separator, "separator", cfg.Separator, "separator written between primes")
	root.Flags().BoolVar(&cfg.Count, "count", cfg.Count, "print only the number of primes in the range")

	root.SetArgs(argv)
	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("primes")
		return app.ExitCode(err)
	}
	return app.ExitOK
}
