package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/catalog"
	"github.com/qyinm/modeldeck/config"
	"github.com/qyinm/modeldeck/logging"
	"github.com/qyinm/modeldeck/types"
	"github.com/qyinm/modeldeck/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "modeldeck",
		Short: "Browse and compare AI generation models in the terminal",
		Long: `modeldeck is a terminal catalog of AI generation models.

Search, filter by category, sort by release date, price or name, and
compare up to four models side by side.

Examples:
  modeldeck --category video --sort price-low
  modeldeck list --search openai
  modeldeck stats`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBrowser,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (.yaml, .toml or .json)")
	flags.String("catalog", "", "Catalog file (.yaml, .json, .toml or .html); builtin when empty")
	flags.String("category", "", "Initial category: all, multimodal, image, video, audio")
	flags.String("sort", "", "Sort order: newest, price-low, price-high, name")
	flags.String("search", "", "Initial search term")
	flags.String("log-file", "", "Append logs to this file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	root.Flags().Bool("no-backdrop", false, "Disable the animated dot backdrop")

	root.AddCommand(newListCmd(), newStatsCmd())
	return root
}

func runBrowser(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	engine, err := openEngine(cfg, log)
	if err != nil {
		return err
	}
	state, err := filterState(cmd, cfg)
	if err != nil {
		return err
	}

	m := ui.NewModel(engine, ui.Options{
		Filter:   state,
		Backdrop: cfg.Backdrop,
		Params:   cfg.BackdropParams(),
		Logger:   log,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		return err
	}
	return nil
}

// resolveConfig layers explicitly set flags over config.LoadFrom.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()

	getenv := os.Getenv
	if path, _ := flags.GetString("config"); path != "" {
		getenv = func(key string) string {
			if key == config.EnvConfig {
				return path
			}
			return os.Getenv(key)
		}
	}
	cfg, err := config.LoadFrom(getenv)
	if err != nil {
		return cfg, err
	}

	setString := func(name string, dst *string) {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}
	setString("catalog", &cfg.Catalog)
	setString("category", &cfg.Category)
	setString("sort", &cfg.Sort)
	setString("log-file", &cfg.LogFile)
	setString("log-level", &cfg.LogLevel)
	if flags.Changed("no-backdrop") {
		off, _ := flags.GetBool("no-backdrop")
		cfg.Backdrop = !off
	}

	return cfg, cfg.Validate()
}

func filterState(cmd *cobra.Command, cfg config.Config) (types.FilterState, error) {
	state, err := cfg.FilterState()
	if err != nil {
		return state, err
	}
	state.SearchTerm, _ = cmd.Flags().GetString("search")
	return state, nil
}

func openEngine(cfg config.Config, log zerolog.Logger) (*browse.Engine, error) {
	cat, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	log.Info().Str("origin", cat.Origin()).Int("count", cat.Len()).Msg("catalog loaded")
	return browse.NewEngine(cat), nil
}

// setup resolves config, logging and the engine for the non-interactive commands.
func setup(cmd *cobra.Command) (*browse.Engine, types.FilterState, io.Closer, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, types.FilterState{}, nil, err
	}
	log, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, types.FilterState{}, nil, err
	}
	engine, err := openEngine(cfg, log)
	if err != nil {
		closer.Close()
		return nil, types.FilterState{}, nil, err
	}
	state, err := filterState(cmd, cfg)
	if err != nil {
		closer.Close()
		return nil, types.FilterState{}, nil, err
	}
	return engine, state, closer, nil
}
