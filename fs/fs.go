// Package fs defines the filesystem abstraction consumed by the document
// loader. Implementations adapt concrete filesystems (the OS filesystem, an
// in-memory filesystem for tests) to these interfaces; see the billy
// subpackage for the go-billy backed implementation.
package fs

import (
	"os"
)

// File represents an open file handle for reading a document.
// Implementations should behave consistently with the standard library.
type File interface {
	Close() error
	Name() string
	Read(p []byte) (n int, err error)
}

// ReadFS is the read-only filesystem surface. Document loading requires
// nothing more than this.
type ReadFS interface {
	// Exists reports whether the path exists.
	Exists(path string) (bool, error)

	// Open opens the named file for reading.
	Open(name string) (File, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(path string) ([]byte, error)

	// Stat returns file info for the named path.
	Stat(name string) (os.FileInfo, error)
}

// Filesystem extends ReadFS with the write operations needed to stage
// documents, for example when preparing fixtures on an in-memory filesystem.
type Filesystem interface {
	ReadFS

	// MkdirAll creates the named directory and any missing parents.
	MkdirAll(path string, perm os.FileMode) error

	// WriteFile writes data to the named file, creating it if necessary.
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
