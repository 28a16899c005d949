package assets

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/gizmo/engine/core"
	"github.com/spaghettifunk/gizmo/engine/pixfont"
)

var (
	ErrUnsupportedFont = errors.New("unsupported font file")
	ErrWatcherClosed   = errors.New("atlas watcher already closed")
)

// AtlasWatcher keeps an atlas loaded from disk and reloads it whenever the
// font file, or an image next to it, is written.
type AtlasWatcher struct {
	path   string
	loader Loader

	current atomic.Pointer[pixfont.Atlas]

	mutex    sync.Mutex
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	events   chan *pixfont.Atlas
	errors   chan error
}

// NewAtlasWatcher loads path once with loader. Watching starts with Start.
func NewAtlasWatcher(path string, loader Loader) (*AtlasWatcher, error) {
	path = filepath.Clean(path)
	atlas, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	aw := &AtlasWatcher{
		path:     path,
		loader:   loader,
		fsnotify: fsWatch,
		events:   make(chan *pixfont.Atlas, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
	}
	aw.current.Store(atlas)
	return aw, nil
}

// Start watches the directory holding the font, so editors that replace the
// file instead of writing it in place are seen too.
func (aw *AtlasWatcher) Start() error {
	aw.mutex.Lock()
	defer aw.mutex.Unlock()
	if aw.isClosed {
		return ErrWatcherClosed
	}
	if err := aw.fsnotify.Add(filepath.Dir(aw.path)); err != nil {
		return err
	}
	aw.started = true
	go aw.start()
	return nil
}

// Atlas returns the most recently loaded atlas.
func (aw *AtlasWatcher) Atlas() *pixfont.Atlas {
	return aw.current.Load()
}

// Reloads delivers each atlas after a successful reload. Slow readers miss
// intermediate atlases but never the latest one through Atlas.
func (aw *AtlasWatcher) Reloads() <-chan *pixfont.Atlas {
	return aw.events
}

func (aw *AtlasWatcher) Errors() <-chan error {
	return aw.errors
}

func (aw *AtlasWatcher) Close() error {
	aw.mutex.Lock()
	defer aw.mutex.Unlock()
	if aw.isClosed {
		return nil
	}
	aw.isClosed = true
	if !aw.started {
		close(aw.events)
		close(aw.errors)
		return aw.fsnotify.Close()
	}
	close(aw.done)
	return nil
}

func (aw *AtlasWatcher) start() {
	for {
		select {

		case e, ok := <-aw.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 && aw.relevant(e.Name) {
				aw.reload()
			}

		case e, ok := <-aw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())
			aw.sendError(e)

		case <-aw.done:
			aw.fsnotify.Close()
			close(aw.events)
			close(aw.errors)
			return
		}
	}
}

// relevant reports whether a change to name can affect the atlas: the font
// file itself or a page image in the same directory.
func (aw *AtlasWatcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if name == aw.path {
		return true
	}
	return filepath.Dir(name) == filepath.Dir(aw.path) &&
		strings.EqualFold(filepath.Ext(name), ".png") &&
		determineFontType(aw.path) == FONT_FILE_TYPE_FNT
}

func (aw *AtlasWatcher) reload() {
	atlas, err := aw.loader.Load(aw.path)
	if err != nil {
		// keep serving the previous atlas
		core.LogWarn("reloading %s failed: %s", aw.path, err)
		aw.sendError(err)
		return
	}
	aw.current.Store(atlas)
	core.LogInfo("reloaded atlas %s", aw.path)

	// drop a stale atlas nobody picked up
	select {
	case <-aw.events:
	default:
	}
	select {
	case aw.events <- atlas:
	default:
	}
}

func (aw *AtlasWatcher) sendError(err error) {
	select {
	case aw.errors <- err:
	default:
	}
}
