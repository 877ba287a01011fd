package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/lumipallolabs/mountinfo/internal/logging"
	"github.com/lumipallolabs/mountinfo/internal/snapshot"
	"github.com/lumipallolabs/mountinfo/internal/ui"
	"github.com/spf13/cobra"
)

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Save the current mounts for a later diff",
		Long: `Enumerate mounts and save the result to the snapshot directory
(snapshot_dir, default ~/.mountinfo/snapshots). Only the newest
snapshot_keep snapshots are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			infos, err := enumerate(cfg)
			if err != nil {
				return err
			}

			store := snapshot.New(cfg.SnapshotDir)
			path, err := store.Save(infos, time.Now())
			if err != nil {
				return fmt.Errorf("save snapshot: %w", err)
			}
			if cfg.SnapshotKeep > 0 {
				removed, err := store.Prune(cfg.SnapshotKeep)
				if err != nil {
					return fmt.Errorf("prune snapshots: %w", err)
				}
				logging.Debug.Printf("Pruned %d old snapshots", removed)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %d mounts to %s\n", len(infos), path)
			return nil
		},
	}
}

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how mounts changed since the last snapshot",
		Long: `Compare the current mounts against the newest snapshot and list
mounts that appeared, disappeared, or whose usage changed.`,
		Args: cobra.NoArgs,
		RunE: runDiff,
	}
	cmd.Flags().BoolP("all", "a", false, "include pseudo filesystems")
	cmd.Flags().Bool("unchanged", false, "also list mounts that did not change")
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	snap, err := snapshot.New(cfg.SnapshotDir).LoadLatest()
	if errors.Is(err, snapshot.ErrNoSnapshot) {
		return fmt.Errorf("%w in %s; run 'mountinfo snapshot' first", err, cfg.SnapshotDir)
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	infos, err := enumerate(cfg)
	if err != nil {
		return err
	}

	changes := snapshot.Diff(ui.FilterDummy(infos, cfg.ShowDummy), ui.FilterDummy(snap.Mounts, cfg.ShowDummy))
	if unchanged, _ := cmd.Flags().GetBool("unchanged"); !unchanged {
		changes = snapshot.Changed(changes)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "since %s\n", snap.Taken.Format(time.DateTime))
	return ui.RenderDiff(out, changes)
}
