package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/timhillgit/asymmetrik/internal/cli"
	"github.com/timhillgit/asymmetrik/internal/logger"
	"github.com/timhillgit/asymmetrik/pkg/config"
	"github.com/timhillgit/asymmetrik/pkg/corpus"
	"github.com/timhillgit/asymmetrik/pkg/suggest"
)

// options are the flags shared by every command
type options struct {
	debug       bool
	configPath  string
	limit       int
	prompt      bool
	showVersion bool

	config *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "keyboard <training-source>",
		Short: "Complete words from a trained frequency index",
		Long: `keyboard reads a training corpus, counts every word in it, and completes
fragments read from stdin with the most frequent matching words.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.showVersion {
				showVersion(cmd)
				return nil
			}
			provider, err := trainProvider(opts.config, args[0])
			if err != nil {
				return err
			}
			handler := cli.NewInputHandler(provider, opts.limit, opts.prompt)
			return handler.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.debug, "debug", "d", false, "log debug output to stderr")
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	rootCmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "candidates printed per line (default from config)")
	rootCmd.Flags().BoolVarP(&opts.prompt, "prompt", "p", false, "log a prompt before each read")
	rootCmd.Flags().BoolVar(&opts.showVersion, "version", false, "show current version")

	rootCmd.AddCommand(newServeCmd(opts))
	return rootCmd
}

// setup configures logging and loads the config before any command runs.
func (o *options) setup(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	logger.Setup(cmd.ErrOrStderr(), o.debug)

	cfg, path, err := config.LoadConfigWithPriority(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debugf("Using config file: (%s)", path)
	o.config = cfg

	if o.limit < 1 {
		o.limit = cfg.CLI.Limit
	}
	if !cmd.Flags().Changed("prompt") {
		o.prompt = cfg.CLI.Prompt
	}
	return nil
}

// trainProvider reads the training source and trains a provider on it once.
func trainProvider(cfg *config.Config, source string) (*suggest.AutocompleteProvider, error) {
	loader := corpus.NewLoader(cfg.Train.Pattern, cfg.Train.MaxBytes)
	text, stats, err := loader.Load(source)
	if err != nil {
		log.Errorf("Failed to load training source: %v", err)
		return nil, err
	}
	log.Debug("Loaded training source", "kind", stats.Kind, "files", stats.Files, "bytes", stats.Bytes)

	provider := suggest.NewProvider()
	provider.Train(text)
	if !provider.Trained() {
		log.Warnf("No words found in %s, every fragment will come back empty", source)
	}
	log.Debug("Index ready", "stats", provider.Stats())
	return provider, nil
}

// showVersion prints the version banner to stderr.
func showVersion(cmd *cobra.Command) {
	banner := logger.NewBanner(cmd.ErrOrStderr())
	banner.Print("")
	banner.Print("[ keyboard ] frequency ranked word completion")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
