package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// defaultDebounce coalesces the burst of events an editor save produces.
const defaultDebounce = 200 * time.Millisecond

func newWatchCmd(a *app) *cobra.Command {
	var (
		sf       solveFlags
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-solve file every time it changes",
		Long: `Solve file once, then watch it and recompute the full partition after
every write until interrupted. Failed runs are logged and watching continues.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, path, out := cmd.Context(), args[0], cmd.OutOrStdout()
			rerun := func() {
				if _, err := a.run(ctx, out, path, sf); err != nil {
					a.log.Error("run failed", zap.String("file", path), zap.Error(err))
				}
			}
			rerun()

			return watchFile(ctx, a.log, path, debounce, rerun)
		},
	}
	bindSolveFlags(cmd, &sf)
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before re-solving")

	return cmd
}

// watchFile calls onChange after path is written or recreated and no further
// event arrived for debounce. The parent directory is watched so that
// editors replacing the file by rename are seen. It returns nil when ctx is
// done.
func watchFile(ctx context.Context, log *zap.Logger, path string, debounce time.Duration, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: creating watcher: %w", err)
	}
	defer w.Close()

	target := filepath.Clean(path)
	if err = w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	log.Info("watching", zap.String("file", target))

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("file changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				log.Warn("event queue overflowed, re-solving", zap.Error(err))
				timer.Reset(debounce)
				continue
			}
			log.Warn("watch error", zap.Error(err))

		case <-timer.C:
			onChange()
		}
	}
}
