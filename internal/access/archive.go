package access

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// ArchiveAccess implements PackageAccess over an opened ZIP archive. It
// precomputes an index of entry names for O(1) existence checks and for a
// stable iteration order from List.
type ArchiveAccess struct {
	reader *zip.Reader
	closer io.Closer // nil when the caller owns the underlying file
	root   string

	mu    sync.RWMutex
	index map[string]*zip.File
	order []string
}

// NewArchiveAccessFromFile opens path as a ZIP archive and returns a
// PackageAccess over it. The returned ArchiveAccess owns the file handle;
// Close releases it.
func NewArchiveAccessFromFile(path string) (*ArchiveAccess, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, wrapIoError("open", path, err)
	}
	return newArchiveAccess(&rc.Reader, rc, path), nil
}

// NewArchiveAccess wraps an already-opened zip.Reader (e.g. one built over
// an io.ReaderAt supplied by a caller's own storage adapter). root is a
// descriptive string for diagnostics; closer, if non-nil, is invoked by
// Close.
func NewArchiveAccess(zr *zip.Reader, closer io.Closer, root string) *ArchiveAccess {
	return newArchiveAccess(zr, closer, root)
}

func newArchiveAccess(zr *zip.Reader, closer io.Closer, root string) *ArchiveAccess {
	index := make(map[string]*zip.File, len(zr.File))
	order := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "/") {
			continue // directory entry
		}
		name := strings.TrimPrefix(f.Name, "/")
		index[name] = f
		order = append(order, name)
	}
	return &ArchiveAccess{reader: zr, closer: closer, root: root, index: index, order: order}
}

// Close releases the underlying archive handle, if this ArchiveAccess
// opened it itself.
func (a *ArchiveAccess) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *ArchiveAccess) lookup(path string) (*zip.File, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f, ok := a.index[strings.TrimPrefix(path, "/")]
	return f, ok
}

func (a *ArchiveAccess) Exists(path string) (bool, error) {
	_, ok := a.lookup(path)
	return ok, nil
}

func (a *ArchiveAccess) ExistsBatch(paths []string) ([]bool, error) {
	out := make([]bool, len(paths))
	for i, p := range paths {
		_, ok := a.lookup(p)
		out[i] = ok
	}
	return out, nil
}

func (a *ArchiveAccess) Read(path string) (io.ReadCloser, error) {
	f, ok := a.lookup(path)
	if !ok {
		return nil, wrapIoError("read", path, fmt.Errorf("not found"))
	}
	rc, err := f.Open()
	if err != nil {
		return nil, wrapIoError("read", path, err)
	}
	return rc, nil
}

func (a *ArchiveAccess) List(prefix string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if prefix == "" {
		out := make([]string, len(a.order))
		copy(out, a.order)
		return out, nil
	}
	prefix = strings.TrimSuffix(prefix, "/")
	var out []string
	for _, name := range a.order {
		if name == prefix || strings.HasPrefix(name, prefix+"/") {
			out = append(out, name)
		}
	}
	return out, nil
}

func (a *ArchiveAccess) ListGlob(pattern string) ([]string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var out []string
	for _, name := range a.order {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			return nil, wrapIoError("listglob", pattern, err)
		}
		if matched {
			out = append(out, name)
		}
	}
	return out, nil
}

func (a *ArchiveAccess) TotalSize() (int64, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var total int64
	for _, f := range a.index {
		total += int64(f.UncompressedSize64)
	}
	return total, nil
}

func (a *ArchiveAccess) RootPath() string {
	return a.root
}

func (a *ArchiveAccess) HasXAPISupport() (bool, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for _, name := range a.order {
		base := name
		if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
			base = name[idx+1:]
		}
		for _, sentinel := range xapiSentinels {
			if base == sentinel {
				return true, nil
			}
		}
	}
	return false, nil
}

var _ PackageAccess = (*ArchiveAccess)(nil)
