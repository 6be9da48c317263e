package preset

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atlekbai/animate"
)

// debounceWindow suppresses the duplicate events editors emit for a single
// save.
const debounceWindow = 100 * time.Millisecond

// Watcher watches preset files on disk and emits freshly parsed preset maps
// when they change. Parse failures are reported on Errors and keep the
// previous presets in effect.
type Watcher struct {
	fsw     *fsnotify.Watcher
	Updates chan map[string]animate.Config
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the named preset files or directories.
func Watch(paths ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("preset: watch: %w", err)
	}
	for _, p := range paths {
		if err := fsw.Add(p); err != nil {
			_ = fsw.Close()
			return nil, fmt.Errorf("preset: watch %s: %w", p, err)
		}
	}

	w := &Watcher{
		fsw:     fsw,
		Updates: make(chan map[string]animate.Config, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isPresetFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now

			cfgs, err := LoadFile(event.Name)
			if err != nil {
				select {
				case w.Errors <- err:
				case <-w.closeCh:
					return
				default:
				}
				continue
			}
			select {
			case w.Updates <- cfgs:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.closeCh:
				return
			default:
			}

		case <-w.closeCh:
			return
		}
	}
}

func isPresetFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
