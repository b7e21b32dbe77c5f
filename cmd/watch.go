package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/SavvyHex/econocode/config"
	"github.com/SavvyHex/econocode/report"

	"github.com/fsnotify/fsnotify"
)

// settleDelay is how long the watcher waits after a change before rebuilding.
// Editors often write a file in several steps.
const settleDelay = 100 * time.Millisecond

// execWatchCommand executes the watch subcommand.  It rebuilds the file each
// time it changes until interrupted.
func execWatchCommand(file string, conf *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep := report.Global()
	rebuild := func() {
		// each rebuild reports its own errors
		buildFile(report.NewReporter(rep.Out(), rep.LogLevel()), file, "", conf.Breakdown)
	}

	if err := watchFile(ctx, file, rebuild); err != nil {
		rep.ReportError("Watch Error", err)
	}
}

// watchFile calls onChange once immediately and then each time file is
// written or replaced.  It returns when ctx is done.
func watchFile(ctx context.Context, file string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}

	// watch the directory so that editors which replace the file by renaming
	// are still observed
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	onChange()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != abs || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(settleDelay)
			} else {
				timer.Reset(settleDelay)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			return err
		case <-fire:
			fire = nil
			onChange()
		}
	}
}
