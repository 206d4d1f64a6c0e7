//go:build unix

package pathkit

import "os"

func chown(path string, uid, gid int, link bool) error {
	var err error
	if link {
		err = os.Lchown(path, uid, gid)
	} else {
		err = os.Chown(path, uid, gid)
	}
	return pathErr("chown", path, err)
}
