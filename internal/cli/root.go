// Package cli implements the mountinfo command tree.
package cli

import (
	"fmt"
	"time"

	"github.com/lumipallolabs/mountinfo/internal/config"
	"github.com/lumipallolabs/mountinfo/internal/logging"
	"github.com/lumipallolabs/mountinfo/internal/mounts"
	"github.com/spf13/cobra"
)

// BuildInfo is injected at build time via ldflags
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// flagKeys maps command line flags onto config keys
var flagKeys = map[string]string{
	"output":      "output",
	"all":         "show_dummy",
	"mount-table": "mount_table",
}

// NewRoot builds the mountinfo command tree. Global flags are bound into
// the config on each run, and --debug turns on enumeration logging.
func NewRoot(build BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mountinfo",
		Short: "mountinfo: list mounted filesystems and their capacity",
		Long: `mountinfo enumerates the filesystems mounted on this machine and reports
their capacity, format and flags.

Settings come from flags, MOUNTINFO_* environment variables and
~/.mountinfo/config.yaml, in that order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug, _ := cmd.Flags().GetBool("debug"); debug && !logging.Enabled {
				logging.Setup(true)
			}
		},
	}

	cmd.Version = build.Version
	cmd.SetVersionTemplate("mountinfo {{.Version}}\n")

	cmd.PersistentFlags().String("config", "", "config file (default: ~/.mountinfo/config.yaml)")
	cmd.PersistentFlags().String("mount-table", mounts.DefaultMountTable, "mount table to read on Linux")
	cmd.PersistentFlags().Bool("debug", false, "write debug log to "+logging.LogFile)

	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newPathsCmd())
	cmd.AddCommand(newBrowseCmd())
	cmd.AddCommand(newSnapshotCmd())
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newVersionCmd(build))

	return cmd
}

// loadConfig merges flags, environment and the config file
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v := config.New(path)
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	return config.Load(v)
}

// enumerate runs a full enumeration and logs how long it took
func enumerate(cfg *config.Config) ([]mounts.MountInfo, error) {
	start := time.Now()
	infos, err := mounts.Infos(cfg.MountOptions()...)
	if err != nil {
		logging.Enum.Printf("enumeration failed after %v: %v", time.Since(start), err)
		return nil, fmt.Errorf("enumerate mounts: %w", err)
	}
	logging.Enum.Printf("enumerated %d mounts in %v", len(infos), time.Since(start))
	return infos, nil
}
