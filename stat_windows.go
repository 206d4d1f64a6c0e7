//go:build windows

package pathkit

import (
	"os"
	"syscall"
	"time"
)

// fillPlatformInfo extracts access time on Windows. Ownership requires
// security descriptor lookups, so UID/GID stay -1 and ownership operations
// report ErrNotSupported.
func fillPlatformInfo(fi os.FileInfo, si *StatInfo) {
	sys := fi.Sys()
	if sys == nil {
		return
	}

	data, ok := sys.(*syscall.Win32FileAttributeData)
	if !ok {
		return
	}

	si.AccessTime = time.Unix(0, data.LastAccessTime.Nanoseconds())
}
