package pathkit

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Walker lazily produces filtered PathSpecs rooted at a folder, depth-first
// and top-down: a folder is yielded before any of its children, and the walk
// root is the first yielded entry. Use it like bufio.Scanner:
//
//	w, err := folder.Walk(ctx, pathkit.WithMaxDepth(2))
//	if err != nil {
//	    return err
//	}
//	for w.Next() {
//	    spec := w.Spec()
//	}
//	if err := w.Err(); err != nil {
//	    return err
//	}
//
// Independent walks share no state and may run concurrently; a single walker
// must not be advanced from multiple goroutines. A stat or directory read
// failure aborts the walk: Next returns false and Err carries a *PathError
// naming the offending path. Abandoning a walker early leaks nothing - every
// directory handle is closed within the read that opened it.
type Walker struct {
	ctx     context.Context
	root    string
	opts    walkOptions
	match   []glob.Glob
	skip    []glob.Glob
	stack   []*walkFrame
	visited map[string]struct{} // canonical paths, followSymlinks walks only
	current *PathSpec
	err     error
	started bool
	done    bool
}

// walkFrame is one open directory: its pending children, its depth, and the
// canonical ancestor chain used for cycle pruning when following symlinks.
type walkFrame struct {
	depth   int
	real    string // canonical path; set only when following symlinks
	parent  *walkFrame
	pending []*PathSpec
}

// Walk begins a traversal rooted at this folder. Pattern options are
// compiled up front; an invalid pattern fails here with ErrInvalidPattern.
func (f *FolderSpec) Walk(ctx context.Context, opts ...WalkOption) (*Walker, error) {
	o := newWalkOptions(opts...)
	w := &Walker{ctx: ctx, root: f.path, opts: o}

	var err error
	if w.match, err = compileGlobs(o.match); err != nil {
		return nil, err
	}
	if w.skip, err = compileGlobs(o.skip); err != nil {
		return nil, err
	}
	if o.followSymlinks {
		w.visited = make(map[string]struct{})
	}
	return w, nil
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

// Next advances to the next entry. It returns false when the walk is
// exhausted, the context is cancelled, or an error occurred; consult Err to
// tell the cases apart.
func (w *Walker) Next() bool {
	if w.err != nil || w.done {
		return false
	}
	if err := w.ctx.Err(); err != nil {
		w.fail(err)
		return false
	}
	if !w.started {
		w.started = true
		return w.start()
	}
	return w.advance()
}

// Spec returns the entry Next advanced to. Valid until the next call to Next.
func (w *Walker) Spec() *PathSpec {
	return w.current
}

// Err returns the error that stopped the walk, if any.
func (w *Walker) Err() error {
	return w.err
}

// Collect drains the walk into a slice.
func (w *Walker) Collect() ([]*PathSpec, error) {
	var specs []*PathSpec
	for w.Next() {
		specs = append(specs, w.Spec())
	}
	return specs, w.Err()
}

func (w *Walker) fail(err error) {
	w.err = err
	w.done = true
}

// start validates the root and seeds the stack with a frame holding the
// root itself, so the root passes through the same filter pipeline as every
// other entry (its relative path is ".").
func (w *Walker) start() bool {
	info, err := Stat(w.root, false)
	if err != nil {
		w.fail(err)
		return false
	}
	if !info.IsDir {
		w.fail(pathErr("walk", w.root, ErrNotDir))
		return false
	}

	root := newResolved(w.root, KindFolder, info)
	w.stack = append(w.stack, &walkFrame{depth: -1, pending: []*PathSpec{root}})
	return w.advance()
}

// advance pops pending entries off the frame stack until one passes the
// yield filters or the stack drains.
func (w *Walker) advance() bool {
	for len(w.stack) > 0 {
		if err := w.ctx.Err(); err != nil {
			w.fail(err)
			return false
		}

		frame := w.stack[len(w.stack)-1]
		if len(frame.pending) == 0 {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		child := frame.pending[0]
		frame.pending = frame.pending[1:]

		spec, yield := w.step(frame, child)
		if w.err != nil {
			return false
		}
		if yield {
			w.current = spec
			return true
		}
	}
	w.done = true
	return false
}

// step applies skip pruning, symlink resolution, descent, and the yield
// filters to a single child entry. It may push a frame onto the stack.
func (w *Walker) step(frame *walkFrame, child *PathSpec) (*PathSpec, bool) {
	rel := w.relPath(child.path)

	// skip excludes unconditionally and prunes the whole subtree
	if matchAny(w.skip, rel) {
		w.opts.logger.Debug().Str("path", child.path).Msg("walk: skip pattern prunes entry")
		return nil, false
	}

	spec := child
	kind := child.kind
	childDepth := frame.depth + 1
	var real string

	if w.opts.followSymlinks {
		var err error
		real, err = filepath.EvalSymlinks(child.path)
		if err != nil {
			w.fail(pathErr("resolve", child.path, err))
			return nil, false
		}
		if kind == KindSymlink {
			// look through the link: the entry takes the target's kind
			// but keeps the link path as its identity
			tinfo, err := Stat(real, false)
			if err != nil {
				w.fail(err)
				return nil, false
			}
			kind = tinfo.Kind()
			spec = newResolved(child.path, kind, tinfo)
		}
		if kind == KindFolder && frame.inChain(real) {
			w.opts.logger.Debug().Str("path", child.path).Str("target", real).Msg("walk: symlink cycle pruned")
			return nil, false
		}
		if _, seen := w.visited[real]; seen {
			return nil, false
		}
		w.visited[real] = struct{}{}
	}

	// folders are always descended into, subject to depth; filters below
	// gate yielding only
	if kind == KindFolder && w.depthAllowsChildren(childDepth) {
		next := &walkFrame{depth: childDepth, real: real, parent: frame}
		if !w.fill(next, child.path) {
			return nil, false
		}
		w.stack = append(w.stack, next)
	}

	if len(w.match) > 0 && !matchAny(w.match, rel) {
		return nil, false
	}
	if !w.kindIncluded(kind) {
		return nil, false
	}
	if kind == KindFile && len(w.opts.exts) > 0 && !hasAnySuffix(child.Name(), w.opts.exts) {
		return nil, false
	}

	w.opts.logger.Trace().Str("path", spec.path).Stringer("kind", kind).Msg("walk: yield")
	return spec, true
}

// fill reads dir's entries into the frame. The directory handle is released
// inside the read; a read failure aborts the walk.
func (w *Walker) fill(frame *walkFrame, dir string) bool {
	entries, err := readDirUnordered(dir)
	if err != nil {
		w.fail(err)
		return false
	}
	frame.pending = make([]*PathSpec, 0, len(entries))
	for _, e := range entries {
		frame.pending = append(frame.pending, specFromDirEntry(dir, e))
	}
	return true
}

// depthAllowsChildren reports whether a folder at the given depth may have
// its children enumerated. The root is depth 0.
func (w *Walker) depthAllowsChildren(depth int) bool {
	return w.opts.maxDepth < 0 || depth < w.opts.maxDepth
}

func (w *Walker) kindIncluded(kind Kind) bool {
	switch kind {
	case KindFile:
		return w.opts.includeFiles
	case KindFolder:
		return w.opts.includeDirs
	case KindSymlink:
		return w.opts.includeSymlinks
	default:
		return true
	}
}

func (w *Walker) relPath(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

// inChain reports whether real is already an open ancestor of this branch.
func (f *walkFrame) inChain(real string) bool {
	for frame := f; frame != nil; frame = frame.parent {
		if frame.real != "" && frame.real == real {
			return true
		}
	}
	return false
}

func matchAny(globs []glob.Glob, rel string) bool {
	for _, g := range globs {
		if g.Match(rel) {
			return true
		}
	}
	return false
}

func hasAnySuffix(name string, suffixes []string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}
