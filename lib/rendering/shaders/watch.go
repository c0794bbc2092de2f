package shaders

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"

	"github.com/cr1ms0nh3ad/quadwire/lib/config"
)

// Watch posts a notification on reload whenever one of the configured
// shader files is rewritten. The receiver is expected to rebuild the
// program on the GL thread; notifications are dropped while one is
// already pending.
func Watch(cfg *config.ShaderCfg, reload chan<- struct{}) error {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create inotify watcher: %w", err)
	}

	for _, path := range []string{cfg.VertexFile, cfg.FragmentFile} {
		_, err = watcher.Watch(path)
		if err != nil {
			cerr := watcher.Close()
			if cerr != nil {
				slog.Error(fmt.Sprintf("could not close watcher: %s", cerr), slog.String("module", "shaders"))
			}
			return fmt.Errorf("could not watch %s: %w", path, err)
		}
	}

	go func() {
		for ev := range watcher.Event {
			if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
				continue
			}
			slog.Debug(fmt.Sprintf("shader file %s changed, scheduling rebuild", ev.Name), slog.String("module", "shaders"))

			// editors often rewrite both files back to back
			time.Sleep(100 * time.Millisecond)

			select {
			case reload <- struct{}{}:
			default:
			}
		}
	}()

	return nil
}
