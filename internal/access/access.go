// Package access implements the PackageAccess capability: a
// uniform byte/metadata interface over an unpacked directory or a ZIP
// archive. All reads happen within a scoped acquisition so a parser never
// leaks a file or archive handle, on any exit path.
package access

import (
	"io"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// PackageAccess abstracts over "unpacked directory" and "ZIP archive"
// package sources. Implementations must support concurrent
// calls to Exists/ExistsBatch/List/TotalSize/HasXAPISupport from any
// goroutine; a single stream returned by Read is not required to be
// thread-safe.
type PackageAccess interface {
	// Exists reports whether path is present under the package root.
	Exists(path string) (bool, error)

	// ExistsBatch reports existence for every path in paths, preserving
	// input order in the result slice. Parsers use this instead of one
	// Exists call per file, since archive- and network-backed
	// implementations can satisfy a batch far more cheaply than N round
	// trips.
	ExistsBatch(paths []string) ([]bool, error)

	// Read opens path for reading. The returned ReadCloser must be closed
	// by the caller; doing so releases any archive/file handle it holds.
	Read(path string) (io.ReadCloser, error)

	// List returns every path under prefix ("" lists the whole root), in
	// no particular order.
	List(prefix string) ([]string, error)

	// ListGlob returns every path under the root matching a doublestar
	// glob pattern (e.g. "*.crs", "**/sendStatement.js").
	ListGlob(pattern string) ([]string, error)

	// TotalSize returns the sum of uncompressed file bytes in the package.
	TotalSize() (int64, error)

	// RootPath returns a descriptive string for diagnostics; never fails.
	RootPath() string

	// HasXAPISupport reports whether either xAPI.js or sendStatement.js
	// (case-sensitive basenames) is present anywhere under the root
	//.
	HasXAPISupport() (bool, error)
}

// xapiSentinels are the two basenames whose presence at any depth marks a
// package as xAPI-capable.
var xapiSentinels = []string{"xAPI.js", "sendStatement.js"}

func wrapIoError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return elmerrors.NewIoError(op, path, err)
}
