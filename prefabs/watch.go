package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

type ChangeKind int

const (
	ChangeTuning ChangeKind = iota
	ChangeLevel
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeLevel:
		return "level"
	case ChangeScript:
		return "script"
	default:
		return "tuning"
	}
}

// Change is an edit to a file the game reads at load time.
type Change struct {
	Path string
	Kind ChangeKind
}

// Classify reports what kind of file path is, if any.
func Classify(path string) (ChangeKind, bool) {
	switch {
	case IsLevelFile(path):
		return ChangeLevel, true
	case IsSpecFile(path):
		return ChangeTuning, true
	case IsScriptFile(path):
		return ChangeScript, true
	}
	return 0, false
}

// Watcher reports edits to level, prefab and script files in the watched
// directories. Bursts of writes to one file collapse into a single change.
type Watcher struct {
	watcher *fsnotify.Watcher
	Changes chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fw,
		Changes: make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Changes and Errors are closed once it returns.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Changes)
		close(w.Errors)
		close(w.done)
	}()

	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := Classify(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := seen[ev.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			seen[ev.Name] = now

			select {
			case w.Changes <- Change{Path: ev.Name, Kind: kind}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Keep only the first unread error.
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsSpecFile reports whether path is a YAML file.
func IsSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func IsScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}

// IsLevelFile reports whether path is a YAML file in a levels directory.
func IsLevelFile(path string) bool {
	return IsSpecFile(path) && filepath.Base(filepath.Dir(path)) == "levels"
}
