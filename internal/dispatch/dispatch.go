// Package dispatch binds detection, parsing, and projection into one
// call, plus an optional idempotence memo keyed by a structural digest
// (root path, total size and sorted file listing; see digestPackage): a
// repeat parse of a package with the same digest is served from cache
// without reading any file.
package dispatch

import (
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/detect"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/parsers/aicc"
	"github.com/standardbeagle/elmparse/internal/parsers/cmi5"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm12"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm2004"
	"github.com/standardbeagle/elmparse/internal/parsers/xapi"
)

// Dispatcher binds detection, parsing, and projection into a single
// parse(access) -> ModuleMetadata entry point. It is stateless apart
// from its optional memo, and cheap to reconstruct per package.
type Dispatcher struct {
	opts      optionsconfig.ParserOptions
	validator *scorm2004.Validator

	mu        sync.Mutex
	memo      map[uint64]model.ModuleMetadata
	memoOrder []uint64
}

// New builds a Dispatcher from opts. When opts.ValidateSCORM2004Schema is
// set, it compiles the SCORM 2004 schema validator once up front.
func New(opts optionsconfig.ParserOptions) (*Dispatcher, error) {
	d := &Dispatcher{opts: opts, memo: make(map[uint64]model.ModuleMetadata)}
	if opts.ValidateSCORM2004Schema {
		var schemaJSON string
		if opts.SCORM2004SchemaPath != "" {
			data, err := os.ReadFile(opts.SCORM2004SchemaPath)
			if err != nil {
				return nil, err
			}
			schemaJSON = string(data)
		}
		v, err := scorm2004.NewValidator(schemaJSON)
		if err != nil {
			return nil, err
		}
		d.validator = v
	}
	return d, nil
}

// Parse runs the dispatcher's full Detect → Parse → Project pipeline
// against acc.
func (d *Dispatcher) Parse(acc access.PackageAccess) (model.ModuleMetadata, *elmerrors.WarningList, error) {
	var digest uint64
	var haveDigest bool
	if d.opts.MemoizeParses {
		if dg, err := digestPackage(acc); err == nil {
			digest, haveDigest = dg, true
			d.mu.Lock()
			if cached, ok := d.memo[digest]; ok {
				d.mu.Unlock()
				return cached, elmerrors.NewWarningList(), nil
			}
			d.mu.Unlock()
		}
	}

	kind, err := detect.Detect(acc)
	if err != nil {
		return model.ModuleMetadata{}, elmerrors.NewWarningList(), err
	}

	var result model.ModuleMetadata
	var warnings *elmerrors.WarningList
	switch kind {
	case model.KindSCORM12:
		result, warnings, err = scorm12.Parse(acc, d.opts)
	case model.KindSCORM2004:
		result, warnings, err = scorm2004.Parse(acc, d.validator, d.opts)
	case model.KindAICC:
		result, warnings, err = aicc.Parse(acc)
	case model.KindCMI5:
		result, warnings, err = cmi5.Parse(acc)
	case model.KindXAPI:
		result, warnings, err = xapi.Parse(acc)
	default:
		return model.ModuleMetadata{}, elmerrors.NewWarningList(), elmerrors.NewDetectionError(acc.RootPath(), nil, nil)
	}
	if err != nil {
		return model.ModuleMetadata{}, warnings, err
	}

	if d.opts.MemoizeParses && haveDigest {
		d.storeMemo(digest, result)
	}
	return result, warnings, nil
}

func (d *Dispatcher) storeMemo(digest uint64, result model.ModuleMetadata) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.memo[digest]; exists {
		return
	}
	capacity := d.opts.MemoCapacity
	if capacity <= 0 {
		capacity = 128
	}
	if len(d.memoOrder) >= capacity {
		oldest := d.memoOrder[0]
		d.memoOrder = d.memoOrder[1:]
		delete(d.memo, oldest)
	}
	d.memo[digest] = result
	d.memoOrder = append(d.memoOrder, digest)
}

// digestPackage builds a cheap structural digest over a package's file
// listing and total size, used as the memo key. It is not a byte-exact
// content hash (computing one would mean reading every file up front,
// defeating the point of a memo), so two distinct packages that happen to
// share a file listing and size collide onto one cache entry; acceptable
// for the batch-reparse scenario this memo targets, documented in
// DESIGN.md.
func digestPackage(acc access.PackageAccess) (uint64, error) {
	paths, err := acc.List("")
	if err != nil {
		return 0, err
	}
	sorted := make([]string, len(paths))
	copy(sorted, paths)
	sort.Strings(sorted)

	size, _ := acc.TotalSize()

	var sb strings.Builder
	sb.WriteString(acc.RootPath())
	sb.WriteByte('\x00')
	sb.WriteString(strconv.FormatInt(size, 10))
	for _, p := range sorted {
		sb.WriteByte('\x00')
		sb.WriteString(p)
	}
	return xxhash.Sum64String(sb.String()), nil
}
