package pathkit

import "github.com/rs/zerolog"

// WalkOption configures a walk.
type WalkOption func(*walkOptions)

// walkOptions collects walk configuration. Files, dirs, and symlinks are
// included by default; depth is unbounded; symlinks are not followed.
type walkOptions struct {
	maxDepth        int // negative = unbounded
	includeFiles    bool
	includeDirs     bool
	includeSymlinks bool
	followSymlinks  bool
	exts            []string
	match           []string
	skip            []string
	logger          zerolog.Logger
}

func newWalkOptions(opts ...WalkOption) walkOptions {
	o := walkOptions{
		maxDepth:        -1,
		includeFiles:    true,
		includeDirs:     true,
		includeSymlinks: true,
		logger:          DefaultLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxDepth bounds the walk. The root is depth 0; a bound of 0 yields
// only the root, 1 adds its immediate children. Negative means unbounded.
func WithMaxDepth(d int) WalkOption {
	return func(o *walkOptions) { o.maxDepth = d }
}

// WithoutFiles excludes regular files from the yielded entries.
func WithoutFiles() WalkOption {
	return func(o *walkOptions) { o.includeFiles = false }
}

// WithoutDirs excludes folders from the yielded entries. Folders are still
// traversed; filters gate yielding, not descent.
func WithoutDirs() WalkOption {
	return func(o *walkOptions) { o.includeDirs = false }
}

// WithoutSymlinks excludes symlinks from the yielded entries.
func WithoutSymlinks() WalkOption {
	return func(o *walkOptions) { o.includeSymlinks = false }
}

// WithFollowSymlinks makes the walk look through symlinks: entries are
// yielded under the link path with the target's kind, symlinked directories
// are descended into, cycles are pruned, and targets already visited in this
// walk are not yielded again.
func WithFollowSymlinks() WalkOption {
	return func(o *walkOptions) { o.followSymlinks = true }
}

// WithExts restricts yielded files to those whose name ends in one of the
// given suffixes (case-sensitive). Folders and symlinks are not affected.
func WithExts(exts ...string) WalkOption {
	return func(o *walkOptions) { o.exts = append(o.exts, exts...) }
}

// WithMatch yields an entry only if its walk-root-relative path matches at
// least one of the glob patterns. Non-matching folders are still traversed.
func WithMatch(patterns ...string) WalkOption {
	return func(o *walkOptions) { o.match = append(o.match, patterns...) }
}

// WithSkip excludes any entry whose walk-root-relative path matches one of
// the glob patterns, along with all of its descendants. Skip takes
// precedence over match.
func WithSkip(patterns ...string) WalkOption {
	return func(o *walkOptions) { o.skip = append(o.skip, patterns...) }
}

// WithWalkLogger routes the walker's debug/trace events to l.
func WithWalkLogger(l zerolog.Logger) WalkOption {
	return func(o *walkOptions) { o.logger = l }
}
