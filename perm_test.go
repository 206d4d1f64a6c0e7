package pathkit

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are advisory on windows")
	}

	root := t.TempDir()
	path := filepath.Join(root, "f.txt")
	writeFile(t, path, "x")

	spec := New(path)
	if err := spec.Chmod(0600); err != nil {
		t.Fatalf("Chmod: %v", err)
	}

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("mode = %o, want 0600", info.Mode().Perm())
	}
}

func TestChmodOnSymlinkIsUnsupported(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link")
	writeFile(t, target, "x")
	mkSymlink(t, target, link)

	before, err := os.Lstat(target)
	if err != nil {
		t.Fatal(err)
	}

	if err := New(link).Chmod(0600); !IsNotSupported(err) {
		t.Fatalf("Chmod on symlink: err = %v, want not-supported", err)
	}

	// the target's bits must be untouched
	after, err := os.Lstat(target)
	if err != nil {
		t.Fatal(err)
	}
	if after.Mode().Perm() != before.Mode().Perm() {
		t.Errorf("target mode changed from %o to %o", before.Mode().Perm(), after.Mode().Perm())
	}
}

func TestChownToCurrentOwner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no POSIX ownership on windows")
	}

	root := t.TempDir()
	path := filepath.Join(root, "f.txt")
	writeFile(t, path, "x")

	// re-assert the current ids; succeeds without privileges
	if err := New(path).Chown(os.Getuid(), os.Getgid()); err != nil {
		t.Fatalf("Chown: %v", err)
	}
	if err := New(path).Chgrp(os.Getgid()); err != nil {
		t.Fatalf("Chgrp: %v", err)
	}
}

func TestChownMissingPath(t *testing.T) {
	err := New(t.TempDir(), "missing").Chown(0, 0)
	if !IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}

func TestStatOwnership(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "f.txt")
	writeFile(t, path, "x")

	info, err := Stat(path, false)
	if err != nil {
		t.Fatal(err)
	}

	if runtime.GOOS == "windows" {
		if info.UID != -1 || info.GID != -1 {
			t.Errorf("UID/GID = %d/%d, want -1/-1 on windows", info.UID, info.GID)
		}
		return
	}
	if info.UID != os.Getuid() {
		t.Errorf("UID = %d, want %d", info.UID, os.Getuid())
	}
	if info.GID < 0 {
		t.Errorf("GID = %d, want a real group id", info.GID)
	}
}

func TestStatFollowSemantics(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target.txt")
	link := filepath.Join(root, "link")
	writeFile(t, target, "hello")
	mkSymlink(t, target, link)

	lst, err := Stat(link, false)
	if err != nil {
		t.Fatal(err)
	}
	if !lst.IsSymlink {
		t.Error("non-following stat did not classify the link as a symlink")
	}

	st, err := Stat(link, true)
	if err != nil {
		t.Fatal(err)
	}
	if !st.IsFile || st.Size != 5 {
		t.Errorf("following stat = file:%v size:%d, want the target's record", st.IsFile, st.Size)
	}
}
