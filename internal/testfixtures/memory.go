// Package testfixtures builds synthetic in-memory packages for
// end-to-end parser/detector tests so they never touch the filesystem.
package testfixtures

import (
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/elmparse/internal/access"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// MemoryAccess implements access.PackageAccess over an in-memory file map.
type MemoryAccess struct {
	files map[string][]byte
	root  string
}

// NewMemoryAccess builds a MemoryAccess from a path->content map.
func NewMemoryAccess(root string, files map[string]string) *MemoryAccess {
	m := make(map[string][]byte, len(files))
	for k, v := range files {
		m[k] = []byte(v)
	}
	return &MemoryAccess{files: m, root: root}
}

func (m *MemoryAccess) Exists(path string) (bool, error) {
	_, ok := m.files[path]
	return ok, nil
}

func (m *MemoryAccess) ExistsBatch(paths []string) ([]bool, error) {
	out := make([]bool, len(paths))
	for i, p := range paths {
		_, ok := m.files[p]
		out[i] = ok
	}
	return out, nil
}

func (m *MemoryAccess) Read(path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, elmerrors.NewIoError("read", path, io.ErrUnexpectedEOF)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *MemoryAccess) List(prefix string) ([]string, error) {
	var out []string
	for p := range m.files {
		if prefix == "" || strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryAccess) ListGlob(pattern string) ([]string, error) {
	var out []string
	for p := range m.files {
		matched, err := doublestar.Match(pattern, p)
		if err != nil {
			return nil, err
		}
		if matched {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (m *MemoryAccess) TotalSize() (int64, error) {
	var total int64
	for _, data := range m.files {
		total += int64(len(data))
	}
	return total, nil
}

func (m *MemoryAccess) RootPath() string { return m.root }

func (m *MemoryAccess) HasXAPISupport() (bool, error) {
	for p := range m.files {
		base := p
		if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
			base = p[idx+1:]
		}
		if base == "xAPI.js" || base == "sendStatement.js" {
			return true, nil
		}
	}
	return false, nil
}

var _ access.PackageAccess = (*MemoryAccess)(nil)
