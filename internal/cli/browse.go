package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lumipallolabs/mountinfo/internal/logging"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/lumipallolabs/mountinfo/internal/prefs"
	"github.com/lumipallolabs/mountinfo/internal/ui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse mounts interactively",
		Long: `Open a full screen browser over the mounted filesystems.

The highlighted mount is remembered in ~/.mountinfo/prefs.json and
selected again on the next start.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	cmd.Flags().BoolP("all", "a", false, "start with pseudo filesystems shown")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	state := prefs.NewManager(prefs.DefaultPath())
	if err := state.Load(); err != nil {
		logging.Debug.Printf("Failed to load prefs: %v", err)
	}
	defer func() {
		if err := state.Close(); err != nil {
			logging.Debug.Printf("Failed to save prefs: %v", err)
		}
	}()

	opts := cfg.MountOptions()
	load := func() ([]mounts.MountInfo, error) {
		return mounts.Infos(opts...)
	}
	app := ui.NewApp(load, cfg.ShowDummy).RememberSelection(state.LastMount(), state.SetLastMount)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}
