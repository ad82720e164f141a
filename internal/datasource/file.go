package datasource

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File is a source backed by a file loaded into memory.
// Writes are confined to the existing extent of the file; Save writes the
// modified contents back to disk.
type File struct {
	path     string
	content  []byte
	original []byte
	readOnly bool
	perm     os.FileMode
}

// FileOption configures a File.
type FileOption func(*File)

// WithReadOnly rejects every write with ErrReadOnly.
func WithReadOnly(readOnly bool) FileOption {
	return func(f *File) {
		f.readOnly = readOnly
	}
}

// Open loads the file at path.
func Open(path string, opts ...FileOption) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("opening %s: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	original := make([]byte, len(data))
	copy(original, data)

	f := &File{
		path:     path,
		content:  data,
		original: original,
		perm:     info.Mode().Perm(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// ReadOnly reports whether writes are rejected.
func (f *File) ReadOnly() bool {
	return f.readOnly
}

// Len returns the file size in bytes.
func (f *File) Len() int64 {
	return int64(len(f.content))
}

// ByteAt implements Source.
func (f *File) ByteAt(addr int64) (byte, bool) {
	if addr < 0 || addr >= int64(len(f.content)) {
		return 0, false
	}
	return f.content[addr], true
}

// SetByteAt implements Source.
func (f *File) SetByteAt(addr int64, v byte) error {
	if f.readOnly {
		return writeError(addr, ErrReadOnly)
	}
	if addr < 0 || addr >= int64(len(f.content)) {
		return writeError(addr, ErrOutOfRange)
	}
	f.content[addr] = v
	return nil
}

// IsDirty returns true if the contents differ from what is on disk.
func (f *File) IsDirty() bool {
	return !bytes.Equal(f.content, f.original)
}

// Save writes the contents back to the file through a temporary file in
// the same directory, then renames it into place.
func (f *File) Save() error {
	if f.readOnly {
		return fmt.Errorf("saving %s: %w", f.path, ErrReadOnly)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("saving %s: %w", f.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(f.content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", f.path, err)
	}
	if err := os.Chmod(tmpPath, f.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", f.path, err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("saving %s: %w", f.path, err)
	}

	f.original = make([]byte, len(f.content))
	copy(f.original, f.content)
	return nil
}
