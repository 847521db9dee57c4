package config

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file's Reward section whenever it changes
// on disk, so a long-running trainer can retune reward shaping without
// a restart. Environment topology is never hot-reloaded:
// Watch only ever calls onChange with a Reward.
type Watcher struct {
	fsw *fsnotify.Watcher
}

// Watch starts watching path for writes, invoking onChange with the
// freshly loaded Reward each time the file is rewritten. Parse errors
// on a reload are logged and otherwise ignored, so a transient partial
// write (common with editors that write-then-rename) does not tear
// down the watch. Callers must Close the returned Watcher when done.
func Watch(path string, onChange func(Reward)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-fsw.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				_, reward, err := Load(path)
				if err != nil {
					log.Printf("config: Watch: reload %s: %v", path, err)
					continue
				}
				onChange(*reward)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				log.Printf("config: Watch: %v", err)
			}
		}
	}()

	return &Watcher{fsw: fsw}, nil
}

// Close stops the watch.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
