package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/gridwatch/gridwatch/internal/app"
	"github.com/gridwatch/gridwatch/internal/clipboard"
	"github.com/gridwatch/gridwatch/internal/config"
	"github.com/gridwatch/gridwatch/internal/export"
	"github.com/gridwatch/gridwatch/internal/layout"
	"github.com/gridwatch/gridwatch/internal/logger"
	"github.com/gridwatch/gridwatch/internal/shortcut"
)

var (
	debugMode             bool
	quietMode             bool
	resetConfig           bool
	exportConfigDir       string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "gridwatch",
	Short: "Terminal dashboard for security operations monitoring",
	Long: `Gridwatch is a terminal dashboard for security operations monitoring.
It renders a rearrangeable widget grid of simulated threat telemetry with
view-mode profiles, themes, and fully customizable keyboard shortcuts.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().BoolVar(&resetConfig, "reset", false, "Discard saved settings and start fresh")
	rootCmd.Flags().StringVar(&exportConfigDir, "export-config", "", "Write the current configuration to the given directory and exit")
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gridwatch %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gridwatch %s\n", version)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if resetConfig {
		if err := cfg.Clear(); err != nil {
			return fmt.Errorf("error clearing config: %w", err)
		}
		fmt.Println("Saved settings cleared")
	}

	if exportConfigDir != "" {
		return exportConfig(cfg, exportConfigDir)
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard unavailable: %v", err)
	}

	m, err := app.New(cfg, version)
	if err != nil {
		return fmt.Errorf("error building app: %w", err)
	}
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}

// exportConfig writes the effective configuration, including the saved
// layout and custom shortcuts, to a stamped JSON file.
func exportConfig(cfg *config.Config, dir string) error {
	state, ok := layout.Unmarshal(cfg.LayoutData())
	if !ok {
		state = layout.DefaultState()
	}

	name, err := export.WriteConfig(dir, export.ConfigExport{
		Theme:     cfg.GetTheme(),
		ViewMode:  cfg.GetViewMode(),
		Layout:    state,
		Shortcuts: shortcut.EffectiveBindings(cfg),
	}, time.Now())
	if err != nil {
		return fmt.Errorf("error exporting config: %w", err)
	}
	fmt.Println("Configuration written to", name)
	return nil
}
