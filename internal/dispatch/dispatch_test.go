package dispatch_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/dispatch"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// countingAccess wraps a PackageAccess and counts Read calls, so tests can
// tell a memo hit (no Read calls) from a memo miss (a full reparse) without
// reaching into the dispatcher's private state.
type countingAccess struct {
	access.PackageAccess
	reads int
}

func (c *countingAccess) Read(path string) (io.ReadCloser, error) {
	c.reads++
	return c.PackageAccess.Read(path)
}

// Parse must be a pure function of a package's bytes, with and without
// the memoization path enabled.
func TestParseIsIdempotentAcrossOptions(t *testing.T) {
	for _, memoize := range []bool{false, true} {
		opts := optionsconfig.Default()
		opts.MemoizeParses = memoize
		d, err := dispatch.New(opts)
		require.NoError(t, err)

		acc := testfixtures.SCORM12HappyPath()
		first, _, err := d.Parse(acc)
		require.NoError(t, err)
		second, _, err := d.Parse(acc)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

// ModuleMetadata must survive a JSON round trip for every supported kind.
func TestModuleMetadataJSONRoundTrip(t *testing.T) {
	d, err := dispatch.New(optionsconfig.Default())
	require.NoError(t, err)

	fixtures := map[string]func() (model.ModuleMetadata, error){
		"scorm12":   func() (model.ModuleMetadata, error) { m, _, e := d.Parse(testfixtures.SCORM12HappyPath()); return m, e },
		"scorm2004": func() (model.ModuleMetadata, error) { m, _, e := d.Parse(testfixtures.SCORM2004FullSequencing()); return m, e },
		"aicc":      func() (model.ModuleMetadata, error) { m, _, e := d.Parse(testfixtures.AICCMinimumViable()); return m, e },
		"cmi5":      func() (model.ModuleMetadata, error) { m, _, e := d.Parse(testfixtures.CMI5AlwaysXAPI()); return m, e },
		"xapi":      func() (model.ModuleMetadata, error) { m, _, e := d.Parse(testfixtures.XAPICourseActivity()); return m, e },
	}

	for name, build := range fixtures {
		t.Run(name, func(t *testing.T) {
			original, err := build()
			require.NoError(t, err)

			data, err := json.Marshal(original)
			require.NoError(t, err)

			var roundTripped model.ModuleMetadata
			require.NoError(t, json.Unmarshal(data, &roundTripped))
			assert.Equal(t, original, roundTripped)
		})
	}
}

// The memo evicts its oldest entry once MemoCapacity is exceeded: with a
// capacity of one, parsing a second distinct package forces the first
// package's next parse to be a genuine reparse rather than a cache hit.
func TestDispatchMemoEvictsOldestEntry(t *testing.T) {
	opts := optionsconfig.Default()
	opts.MemoizeParses = true
	opts.MemoCapacity = 1
	d, err := dispatch.New(opts)
	require.NoError(t, err)

	first := &countingAccess{PackageAccess: testfixtures.SCORM12HappyPath()}
	second := &countingAccess{PackageAccess: testfixtures.SCORM2004FullSequencing()}

	_, _, err = d.Parse(first)
	require.NoError(t, err)
	readsAfterFirstParse := first.reads
	require.Greater(t, readsAfterFirstParse, 0)

	_, _, err = d.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, readsAfterFirstParse, first.reads, "second parse of the same package should be a cache hit")

	_, _, err = d.Parse(second)
	require.NoError(t, err)

	_, _, err = d.Parse(first)
	require.NoError(t, err)
	assert.Greater(t, first.reads, readsAfterFirstParse, "eviction should force a genuine reparse")
}

// A package matching no known format surfaces a DetectionError from the
// dispatcher.
func TestDispatchDetectionFailure(t *testing.T) {
	d, err := dispatch.New(optionsconfig.Default())
	require.NoError(t, err)
	_, _, err = d.Parse(testfixtures.DetectionFailure())
	require.Error(t, err)
	var detErr *elmerrors.DetectionError
	require.ErrorAs(t, err, &detErr)
}
