package pathkit

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"
)

// Watch creates a change token that signals once any immediate entry of the
// folder whose folder-relative path matches the glob pattern is created,
// written, renamed, or removed. The underlying watcher is released when the
// token fires or ctx is cancelled, whichever comes first.
func (f *FolderSpec) Watch(ctx context.Context, pattern string) (ChangeToken, error) {
	g, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, pattern, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, pathErr("watch", f.path, err)
	}
	if err := watcher.Add(f.path); err != nil {
		watcher.Close()
		return nil, pathErr("watch", f.path, err)
	}

	token := newCallbackChangeToken()
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				rel, err := filepath.Rel(f.path, event.Name)
				if err != nil {
					continue
				}
				if g.Match(filepath.ToSlash(rel)) {
					token.signalChange()
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return token, nil
}
