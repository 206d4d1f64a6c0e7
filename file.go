package pathkit

import (
	"io"
	"os"
)

// FileSpec adds regular-file capabilities to a resolved PathSpec.
type FileSpec struct {
	*PathSpec
}

// Open opens the file for reading. The caller owns the handle.
func (f *FileSpec) Open() (*os.File, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, pathErr("open", f.path, err)
	}
	return fh, nil
}

// ReadAll reads the entire file into memory. Use for small files only.
func (f *FileSpec) ReadAll() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, pathErr("read", f.path, err)
	}
	return data, nil
}

// ReadPrefix reads at most n leading bytes. A file shorter than n yields
// whatever is there without error.
func (f *FileSpec) ReadPrefix(n int) ([]byte, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, pathErr("read", f.path, err)
	}
	defer fh.Close()

	buf := make([]byte, n)
	read, err := io.ReadFull(fh, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, pathErr("read", f.path, err)
	}
	return buf[:read], nil
}

// DetectType classifies the file by its leading bytes against the signature
// table.
func (f *FileSpec) DetectType() (Type, error) {
	prefix, err := f.ReadPrefix(SniffLen())
	if err != nil {
		return Type{}, err
	}
	return DetectType(prefix), nil
}

// ContentType guesses the file's MIME type from its extension, falling back
// to content sniffing.
func (f *FileSpec) ContentType() (string, error) {
	// 512 bytes is the window http.DetectContentType considers
	prefix, err := f.ReadPrefix(512)
	if err != nil {
		return "", err
	}
	return GuessContentType(f.path, prefix), nil
}

// Checksum calculates the file's checksum using the specified algorithm.
// Returns the checksum as a hex-encoded string.
func (f *FileSpec) Checksum(algorithm ChecksumAlgorithm) (string, error) {
	fh, err := f.Open()
	if err != nil {
		return "", err
	}
	defer fh.Close()

	sum, err := CalculateChecksum(fh, algorithm)
	if err != nil {
		return "", pathErr("checksum", f.path, err)
	}
	return sum, nil
}

// Checksums calculates multiple checksums in a single read pass.
func (f *FileSpec) Checksums(algorithms []ChecksumAlgorithm) (map[ChecksumAlgorithm]string, error) {
	fh, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	sums, err := CalculateChecksums(fh, algorithms)
	if err != nil {
		return nil, pathErr("checksum", f.path, err)
	}
	return sums, nil
}
