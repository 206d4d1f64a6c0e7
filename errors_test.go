package pathkit

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"
)

func TestPathError(t *testing.T) {
	inner := errors.New("boom")
	err := &PathError{Op: "walk", Path: "/tmp/x", Err: inner}

	if got := err.Error(); got != "walk /tmp/x: boom" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, inner) {
		t.Error("PathError did not unwrap to its cause")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "wrapped ErrNotExist",
			err:   &PathError{Op: "lstat", Path: "/x", Err: ErrNotExist},
			check: IsNotExist,
			want:  true,
		},
		{
			name:  "stdlib fs.ErrNotExist",
			err:   &PathError{Op: "lstat", Path: "/x", Err: fs.ErrNotExist},
			check: IsNotExist,
			want:  true,
		},
		{
			name:  "permission",
			err:   &PathError{Op: "chmod", Path: "/x", Err: ErrPermission},
			check: IsPermission,
			want:  true,
		},
		{
			name:  "not supported",
			err:   &PathError{Op: "chown", Path: "/x", Err: ErrNotSupported},
			check: IsNotSupported,
			want:  true,
		},
		{
			name:  "cycle",
			err:   &PathError{Op: "walk", Path: "/x", Err: ErrCycle},
			check: IsCycle,
			want:  true,
		},
		{
			name:  "unrelated",
			err:   errors.New("nope"),
			check: IsNotExist,
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(tt.err); got != tt.want {
				t.Errorf("check = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathErrNil(t *testing.T) {
	if pathErr("op", "/x", nil) != nil {
		t.Error("pathErr(nil) != nil")
	}
}

// pathErr maps OS conditions onto the package sentinels, so errors coming
// back from real filesystem calls match them directly.
func TestPathErrMapsOSErrors(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "not exist", in: fs.ErrNotExist, want: ErrNotExist},
		{name: "permission", in: fs.ErrPermission, want: ErrPermission},
		{name: "exist", in: fs.ErrExist, want: ErrExist},
		{name: "too many links", in: syscall.ELOOP, want: ErrCycle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pathErr("op", "/x", tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("pathErr(%v) = %v, does not match %v", tt.in, err, tt.want)
			}
			var pe *PathError
			if !errors.As(err, &pe) || pe.Path != "/x" {
				t.Errorf("pathErr did not attach the path: %v", err)
			}
		})
	}
}

func TestStatNotExistSentinel(t *testing.T) {
	_, err := Stat("/this/path/should/not/exist/anywhere", false)
	if !errors.Is(err, ErrNotExist) {
		t.Fatalf("Stat on a missing path: err = %v, want ErrNotExist", err)
	}
	if !IsNotExist(err) {
		t.Errorf("IsNotExist(%v) = false", err)
	}
}
