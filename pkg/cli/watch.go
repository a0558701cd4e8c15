package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/yamldiff/yamldiff/pkg/console"
)

// WatchFiles reruns the comparison whenever either input changes. It
// blocks until interrupted.
func WatchFiles(leftPath, rightPath string, opts CompareOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories rather than the files: editors often
	// replace files on save, which drops a watch added on the file itself.
	watched := map[string]struct{}{
		filepath.Clean(leftPath):  {},
		filepath.Clean(rightPath): {},
	}
	for dir := range map[string]struct{}{
		filepath.Dir(leftPath):  {},
		filepath.Dir(rightPath): {},
	} {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	fmt.Printf("Watching %s and %s for changes...\n", leftPath, rightPath)
	if opts.Verbose {
		fmt.Println("Press Ctrl+C to stop watching.")
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	runCompare := func() {
		if _, err := CompareFiles(leftPath, rightPath, opts); err != nil {
			fmt.Fprintln(os.Stderr, FormatCompareError(err))
		}
	}
	runCompare()

	const debounceDelay = 300 * time.Millisecond
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if _, ok := watched[filepath.Clean(event.Name)]; !ok {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if opts.Verbose {
				fmt.Printf("Detected change: %s (%s)\n", event.Name, event.Op.String())
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, runCompare)

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if opts.Verbose {
				fmt.Println(console.FormatWarningMessage(fmt.Sprintf("Watcher error: %v", err)))
			}

		case <-sigChan:
			fmt.Println("\nStopped watching.")
			return nil
		}
	}
}
