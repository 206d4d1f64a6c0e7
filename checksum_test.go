package pathkit

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestCalculateChecksum(t *testing.T) {
	tests := []struct {
		name      string
		algorithm ChecksumAlgorithm
		input     string
		want      string
	}{
		{
			name:      "sha256 empty",
			algorithm: ChecksumSHA256,
			input:     "",
			want:      "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:      "sha256 abc",
			algorithm: ChecksumSHA256,
			input:     "abc",
			want:      "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		},
		{
			name:      "md5 abc",
			algorithm: ChecksumMD5,
			input:     "abc",
			want:      "900150983cd24fb0d6963f7d28e17f72",
		},
		{
			name:      "crc32 check vector",
			algorithm: ChecksumCRC32,
			input:     "123456789",
			want:      "cbf43926",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateChecksum(strings.NewReader(tt.input), tt.algorithm)
			if err != nil {
				t.Fatalf("CalculateChecksum: %v", err)
			}
			if got != tt.want {
				t.Errorf("checksum = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCalculateChecksumUnsupported(t *testing.T) {
	_, err := CalculateChecksum(strings.NewReader("x"), ChecksumAlgorithm("blake99"))
	if !IsNotSupported(err) {
		t.Fatalf("err = %v, want not-supported", err)
	}
}

func TestXXHashIsDeterministic(t *testing.T) {
	a, err := CalculateChecksum(strings.NewReader("same input"), ChecksumXXHash)
	if err != nil {
		t.Fatal(err)
	}
	b, err := CalculateChecksum(strings.NewReader("same input"), ChecksumXXHash)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("xxhash not deterministic: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("xxhash hex length = %d, want 16", len(a))
	}

	c, err := CalculateChecksum(strings.NewReader("different input"), ChecksumXXHash)
	if err != nil {
		t.Fatal(err)
	}
	if a == c {
		t.Error("xxhash collided on trivially different inputs")
	}
}

func TestFileChecksums(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.bin")
	writeFile(t, path, "abc")

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	sums, err := file.Checksums([]ChecksumAlgorithm{ChecksumMD5, ChecksumSHA256, ChecksumXXHash})
	if err != nil {
		t.Fatal(err)
	}
	if sums[ChecksumMD5] != "900150983cd24fb0d6963f7d28e17f72" {
		t.Errorf("md5 = %s", sums[ChecksumMD5])
	}
	if sums[ChecksumSHA256] != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("sha256 = %s", sums[ChecksumSHA256])
	}

	single, err := file.Checksum(ChecksumXXHash)
	if err != nil {
		t.Fatal(err)
	}
	if single != sums[ChecksumXXHash] {
		t.Errorf("single-pass xxhash %s != multi-pass %s", single, sums[ChecksumXXHash])
	}
}

func TestVerifyChecksum(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.bin")
	writeFile(t, path, "abc")

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := file.VerifyChecksum(context.Background(), "900150983cd24fb0d6963f7d28e17f72", ChecksumMD5)
	if err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
	if !ok {
		t.Error("verification failed on a matching checksum")
	}

	ok, err = file.VerifyChecksum(context.Background(), "deadbeef", ChecksumMD5)
	if err != nil {
		t.Fatalf("VerifyChecksum: %v", err)
	}
	if ok {
		t.Error("verification passed on a mismatched checksum")
	}
}

func TestVerifyChecksumCancelled(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data.bin")
	writeFile(t, path, "abc")

	file, err := NewFile(path)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = file.VerifyChecksum(ctx, "900150983cd24fb0d6963f7d28e17f72", ChecksumMD5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
