package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/AvengeMedia/artspace/internal/config"
	"github.com/AvengeMedia/artspace/internal/gallery"
	"github.com/AvengeMedia/artspace/internal/log"
	"github.com/AvengeMedia/artspace/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var appConfig = config.Default()

var rootCmd = &cobra.Command{
	Use:   "artspace",
	Short: "Art Space gallery viewer",
	Long:  "Art Space\n\nBrowse a small gallery of artworks one at a time.\nUse the arrow keys, the on-screen buttons or a horizontal mouse drag to move between them.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional
		_ = godotenv.Load()
		return loadConfig(cmd)
	},
	RunE: runInteractiveMode,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run:   runVersion,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the artworks in the gallery",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		query, _ := cmd.Flags().GetString("search")
		return listArtworks(cmd.OutOrStdout(), gallery.Default(), query, asJSON)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <page>",
	Short: "Print a single artwork",
	Long:  "Render one artwork to stdout without starting the interactive viewer.\nPages are numbered from 1; pages past the end show the last artwork.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid page %q: %w", args[0], err)
		}
		if page < 1 {
			return fmt.Errorf("page must be at least 1, got %d", page)
		}
		return showArtwork(cmd.OutOrStdout(), gallery.NewPager(gallery.Default()), page, appConfig)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the viewer configuration",
	// Overrides the root hook: an invalid config must not block resetting it.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return initConfig(afero.NewOsFs(), configPath(cmd), force, cmd.OutOrStdout())
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath(cmd))
	},
}

func configPath(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.DefaultPath()
}

func loadConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader(afero.NewOsFs()).Load(configPath(cmd))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if err := log.SetLevel(cfg.LogLevel); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

func runInteractiveMode(cmd *cobra.Command, args []string) error {
	session := uuid.NewString()

	logFile, err := log.LogToFile(config.LogPath())
	if err != nil {
		log.Warn("logging to stderr is disabled while the viewer runs", "err", err)
		log.SetOutput(io.Discard)
	} else {
		defer logFile.Close()
	}
	logger := log.With("session", session)
	logger.Info("session started", "version", Version)

	pager := gallery.NewPager(gallery.Default())
	model := tui.NewModel(pager, tui.Options{
		Version: Version,
		Session: session,
		Config:  appConfig,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(cmd.Context())}
	if appConfig.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("viewer exited with error", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logger.Info("session ended", "index", pager.Index())
	return nil
}

func runVersion(cmd *cobra.Command, args []string) {
	printASCII(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "Art Space %s\n", Version)
}
