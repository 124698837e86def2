package tabletag

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce groups bursts of filesystem events (editors typically write,
// chmod, and rename in quick succession) into a single Refresh.
const watchDebounce = 250 * time.Millisecond

// Watch reloads the template set whenever a *.tmpl.html file under the
// template directory changes. It blocks until ctx is canceled or the watcher
// fails, so run it in its own goroutine. Managers without a template
// directory have nothing to watch and return an error immediately.
func (tm *TagManager) Watch(ctx context.Context) error {
	dir := tm.GetTemplateDir()
	if dir == "" {
		return errors.New("tabletag: no template directory to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func(watcher *fsnotify.Watcher) {
		_ = watcher.Close()
	}(watcher)

	if err = watcher.Add(dir); err != nil {
		return err
	}
	tm.logger.Info("Watching template directory", "dir", dir)

	timer := time.NewTimer(watchDebounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("tabletag: watcher closed")
			}
			if !strings.HasSuffix(event.Name, ".tmpl.html") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(watchDebounce)
		case <-timer.C:
			if err = tm.Refresh(); err != nil {
				// Keep watching; a half-saved template should not kill the
				// reload loop.
				tm.logger.Error("Template reload failed", "error", err)
				continue
			}
			tm.logger.Info("Templates reloaded")
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return errors.New("tabletag: watcher closed")
			}
			tm.logger.Error("Template watcher error", "error", watchErr)
		}
	}
}
