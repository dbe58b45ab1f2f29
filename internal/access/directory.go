package access

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DirectoryAccess implements PackageAccess over an unpacked directory on a
// local filesystem.
type DirectoryAccess struct {
	root string
}

// NewDirectoryAccess returns a PackageAccess rooted at dir. dir is recorded
// verbatim for diagnostics; callers should pass an absolute path for
// stable behavior across working-directory changes.
func NewDirectoryAccess(dir string) *DirectoryAccess {
	return &DirectoryAccess{root: dir}
}

func (d *DirectoryAccess) resolve(path string) string {
	return filepath.Join(d.root, filepath.FromSlash(path))
}

func (d *DirectoryAccess) Exists(path string) (bool, error) {
	_, err := os.Stat(d.resolve(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, wrapIoError("exists", path, err)
}

func (d *DirectoryAccess) ExistsBatch(paths []string) ([]bool, error) {
	out := make([]bool, len(paths))
	for i, p := range paths {
		ok, err := d.Exists(p)
		if err != nil {
			return nil, err
		}
		out[i] = ok
	}
	return out, nil
}

func (d *DirectoryAccess) Read(path string) (io.ReadCloser, error) {
	f, err := os.Open(d.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrapIoError("read", path, os.ErrNotExist)
		}
		return nil, wrapIoError("read", path, err)
	}
	return f, nil
}

func (d *DirectoryAccess) List(prefix string) ([]string, error) {
	base := d.resolve(prefix)
	var out []string
	err := filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(d.root, path)
		if relErr != nil {
			return relErr
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, wrapIoError("list", prefix, err)
	}
	return out, nil
}

func (d *DirectoryAccess) ListGlob(pattern string) ([]string, error) {
	all, err := d.List("")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range all {
		matched, err := doublestar.Match(pattern, p)
		if err != nil {
			return nil, wrapIoError("listglob", pattern, err)
		}
		if matched {
			out = append(out, p)
		}
	}
	return out, nil
}

func (d *DirectoryAccess) TotalSize() (int64, error) {
	var total int64
	err := filepath.WalkDir(d.root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, wrapIoError("total_size", "", err)
	}
	return total, nil
}

func (d *DirectoryAccess) RootPath() string {
	return d.root
}

func (d *DirectoryAccess) HasXAPISupport() (bool, error) {
	all, err := d.List("")
	if err != nil {
		return false, err
	}
	for _, p := range all {
		base := p
		if idx := strings.LastIndexByte(p, '/'); idx >= 0 {
			base = p[idx+1:]
		}
		for _, sentinel := range xapiSentinels {
			if base == sentinel {
				return true, nil
			}
		}
	}
	return false, nil
}

var _ PackageAccess = (*DirectoryAccess)(nil)
