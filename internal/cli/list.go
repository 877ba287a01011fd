package cli

import (
	"fmt"

	"github.com/lumipallolabs/mountinfo/internal/config"
	"github.com/lumipallolabs/mountinfo/internal/logging"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/lumipallolabs/mountinfo/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List mounted filesystems with capacity",
		Long: `List every mounted filesystem with its size, usage and flags.

Pseudo filesystems such as proc and sysfs are hidden unless --all is given.

Examples:
  # Table view
  mountinfo list

  # Everything, as JSON
  mountinfo list --all --output json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}
	cmd.Flags().BoolP("all", "a", false, "include pseudo filesystems")
	cmd.Flags().StringP("output", "o", config.OutputTable, "output format (table|json|yaml|plain)")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	infos, err := enumerate(cfg)
	if err != nil {
		return err
	}
	infos = ui.FilterDummy(infos, cfg.ShowDummy)

	out := cmd.OutOrStdout()
	switch cfg.Output {
	case config.OutputJSON:
		return ui.RenderJSON(out, infos)
	case config.OutputYAML:
		return ui.RenderYAML(out, infos)
	case config.OutputPlain:
		return ui.RenderPlain(out, infos)
	default:
		return ui.RenderTable(out, infos)
	}
}

func newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print mount paths, one per line",
		Long: `Print the path of every mount in native enumeration order.

No capacities are queried, so pseudo filesystems are included.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			paths, err := mounts.Paths(cfg.MountOptions()...)
			if err != nil {
				return fmt.Errorf("enumerate mount paths: %w", err)
			}
			logging.Enum.Printf("listed %d mount paths", len(paths))
			return ui.RenderPaths(cmd.OutOrStdout(), paths)
		},
	}
}

func newVersionCmd(build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mountinfo %s (commit: %s, built: %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
