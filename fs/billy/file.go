package billy

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
)

// File wraps a go-billy File behind the read surface of the parent fs.File
// interface.
type File struct {
	file billy.File
}

// Close implements File.Close.
func (f *File) Close() error {
	if err := f.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", f.file.Name(), err)
	}
	return nil
}

// Name implements File.Name.
func (f *File) Name() string {
	return f.file.Name()
}

// Read implements File.Read.
func (f *File) Read(p []byte) (n int, err error) {
	n, err = f.file.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("billy: read %q: %w", f.file.Name(), err)
	}
	return n, nil
}
