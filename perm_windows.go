//go:build windows

package pathkit

// Windows has no POSIX uid/gid model; ownership changes surface as a
// distinguishable unsupported outcome, never a silent success.
func chown(path string, uid, gid int, link bool) error {
	return pathErr("chown", path, ErrNotSupported)
}
