// Package main provides the CLI entrypoint for skillshare.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/skillshare/internal/config"
	"github.com/verte-zerg/skillshare/internal/report"
	"github.com/verte-zerg/skillshare/internal/store"
	"github.com/verte-zerg/skillshare/internal/tui"
)

const terminalWidthBackup = 80

var dataDirFlag string

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "skillshare",
		Short:         "Skill-sharing platform",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runAppCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: XDG data home)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func runAppCmd(_ *cobra.Command, _ []string) error {
	st, dataDir, err := openStore()
	if err != nil {
		return err
	}

	model := tui.NewModel(st)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if err := st.Save(dataDir); err != nil {
		return fmt.Errorf("failed to save data: %w", err)
	}
	return nil
}

func openStore() (*store.Store, string, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	dataDir := config.ResolveDataDir(dataDirFlag, fileCfg)

	st := store.New()
	if err := st.Load(dataDir); err != nil {
		return nil, "", fmt.Errorf("failed to load data: %w", err)
	}
	return st, dataDir, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print session, request, and result tables",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	rule := strings.Repeat("-", ruleWidth())

	if err := report.RenderSessionTable(out, st.Sessions()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintln(out, rule); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := report.RenderRequestTable(out, st.Requests()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if _, err := fmt.Fprintln(out, rule); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := report.RenderResultTable(out, st.Results()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func ruleWidth() int {
	width := terminalWidth()
	if width > terminalWidthBackup {
		width = terminalWidthBackup
	}
	return width
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# skillshare configuration
# Uncomment a value to enable it. CLI flags override config values.

[app]
# data-dir = %q
`,
		config.DefaultDataDir(),
	)
}
