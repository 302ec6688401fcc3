package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/linemark/internal/cliconfig"
	"github.com/bft-labs/linemark/pkg/linemark"
	"github.com/bft-labs/linemark/pkg/log"
)

var longHelp = strings.TrimSpace(`
Annotate every line of a text file with a random UUID and the number of
uppercase letters it contains.

Records are printed to stdout as "<uuid> - <text>[<count>]" once the whole
file has been read. Blank lines are skipped unless an older revision is
requested. Configure via file, env (LINEMARK_*), or flags.
`)

var exampleUsage = strings.TrimSpace(`
  linemark notes.txt
  linemark --file notes.txt --revision 2
  linemark --config $HOME/.linemark/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func newRootCmd(logger *zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "linemark [file]",
		Short:         "Annotate lines of a text file with UUIDs and capital counts",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// A positional file wins over every other source.
			if len(args) == 1 {
				cfg.File = args[0]
				changed["file"] = true
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			*logger = logger.Level(cfg.Level())
			logger.Debug().Interface("config", cfg).Msg("configuration")

			a, err := linemark.New(
				linemark.Config{
					Revision:      linemark.Revision(cfg.Revision),
					WatchDebounce: cfg.WatchDebounce,
				},
				linemark.WithOutput(cmd.OutOrStdout()),
				linemark.WithLogger(log.NewZerologAdapterWithLogger(*logger)),
			)
			if err != nil {
				return fmt.Errorf("create annotator: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				logger.Info().Str("file", cfg.File).Msg("watching for changes")
				return a.Watch(ctx, cfg.File)
			}

			_, err = a.Annotate(ctx, cfg.File)
			return err
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.linemark/config.toml)")
	root.Flags().StringVar(&cfg.File, "file", cfg.File, "input text file")
	root.Flags().IntVar(&cfg.Revision, "revision", cfg.Revision, "annotation revision: 1 legacy, 2 keep blank lines, 3 current")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-annotate whenever the file changes")
	root.Flags().DurationVar(&cfg.WatchDebounce, "watch-debounce", cfg.WatchDebounce, "delay after a change before re-annotating")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root
}

func main() {
	logger := cliconfig.Logger()

	root := newRootCmd(&logger)
	if err := root.ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("linemark")
		os.Exit(1)
	}
}
