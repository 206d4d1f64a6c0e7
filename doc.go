// Package pathkit provides a typed local-filesystem path toolkit: path specs
// with lazily resolved kinds, a filtered depth-bounded directory walker with
// symlink-cycle safety, byte-signature file type detection, and uniform
// permission, safe-copy, and backup operations.
//
// # Path specs
//
// A [PathSpec] binds a joined, normalized path to a lazily resolved kind.
// Construction never touches the filesystem:
//
//	spec := pathkit.New("/var/data", "reports", "2026.csv")
//	kind, err := spec.Resolve() // one non-following stat, then cached
//
// Resolution classifies the path as a file, folder, symlink, or unknown
// (devices, sockets, FIFOs). The typed views gate capabilities:
//
//	file, err := spec.File() // ErrNotFile unless it resolved to a file
//	sum, err := file.Checksum(pathkit.ChecksumSHA256)
//
// # Walking
//
// [FolderSpec.Walk] yields a lazy, top-down, depth-first sequence:
//
//	folder, err := pathkit.NewFolder("/var/data")
//	w, err := folder.Walk(ctx,
//	    pathkit.WithMaxDepth(3),
//	    pathkit.WithExts(".csv", ".json"),
//	    pathkit.WithSkip("tmp/**"),
//	)
//	for w.Next() {
//	    fmt.Println(w.Spec().Path())
//	}
//	if err := w.Err(); err != nil {
//	    log.Fatal(err)
//	}
//
// Filters gate yielding, not traversal; skip patterns prune whole subtrees.
// With [WithFollowSymlinks] the walker looks through links, prunes cycles,
// and never yields the same canonical path twice.
//
// # Type detection
//
// [DetectType] classifies a buffer of leading bytes against an ordered
// signature table; [FileSpec.DetectType] feeds it a bounded prefix:
//
//	t, err := file.DetectType()
//	fmt.Println(t.Category, t.Name) // e.g. "image png"
//
// # Safe writes
//
// [FileSpec.SafeCopy] and [FileSpec.Backup] write through a temp sibling and
// an atomic rename, so a failed copy never leaves a partial destination.
package pathkit
