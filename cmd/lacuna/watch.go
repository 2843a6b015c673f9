package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/lacuna-lang/lacuna/pkg/report"
	"github.com/lacuna-lang/lacuna/pkg/statics"
	"github.com/lacuna-lang/lacuna/pkg/syntax"
)

func watchCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [flags] file",
		Short: "Recheck a tree whenever it changes",
		Long: `Watch rechecks the tree on every write and reprints the report.
Results are memoized across rechecks, so saving without a change
replays the previous statics instead of checking again.`,
		Example: `  # Recheck on every save
  lacuna watch program.json

  # Watch with per-node JSON output
  lacuna watch --json program.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.File = args[0]
			return runWatch(cmd, *cfg)
		},
	}
}

func runWatch(cmd *cobra.Command, cfg Config) error {
	setupLogging(cfg.Debug)

	target, err := filepath.Abs(cfg.File)
	if err != nil {
		return err
	}
	cfg, err = mergeProjectConfig(cmd, cfg, filepath.Dir(target))
	if err != nil {
		return err
	}

	session, err := statics.NewSession(cfg.CacheSize)
	if err != nil {
		return err
	}

	recheck := func() {
		source, err := os.ReadFile(target)
		if err != nil {
			slog.Error("read failed", "path", target, "error", err)
			return
		}
		root, err := syntax.DecodeExp(source)
		if err != nil {
			// Editors write in chunks; a torn read decodes on the next event.
			slog.Error("decode failed", "path", target, "error", err)
			return
		}
		infos := session.Compute(root)
		slog.Debug("rechecked tree", "nodes", len(infos), "memoized", session.Len())
		_ = render(report.New(infos), cfg)
	}

	recheck()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory rather than the file: editors that save by
	// renaming a temp file over the target would otherwise detach the watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	slog.Info("watching", "path", target)

	ctx := cmd.Context()
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Name != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("change detected", "op", ev.Op.String())
			fmt.Println()
			recheck()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch failed", "error", err)
		case <-ctx.Done():
			return nil
		}
	}
}
