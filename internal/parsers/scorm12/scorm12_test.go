package scorm12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm12"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// A well-formed SCORM 1.2 package parses cleanly end to end.
func TestParseHappyPath(t *testing.T) {
	metadata, warnings, err := scorm12.Parse(testfixtures.SCORM12HappyPath(), optionsconfig.Default())
	require.NoError(t, err)
	assert.Empty(t, warnings.Warnings)
	assert.Equal(t, model.KindSCORM12, metadata.Kind)
	assert.Equal(t, "index.html", metadata.LaunchURL)
	assert.False(t, metadata.XAPIEnabled)
	assert.Equal(t, model.SequencingNone, metadata.SequencingLevel)
	assert.Equal(t, "Course One", metadata.Title)
}

// A default organization typo falls back to the single organization
// present.
func TestParseDefaultOrgTypoFallsBack(t *testing.T) {
	metadata, _, err := scorm12.Parse(testfixtures.SCORM12DefaultOrgTypo(), optionsconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, "index.html", metadata.LaunchURL)
}

// Parse must be a pure function of the package's bytes.
func TestParseIsIdempotent(t *testing.T) {
	acc := testfixtures.SCORM12HappyPath()
	first, _, err := scorm12.Parse(acc, optionsconfig.Default())
	require.NoError(t, err)
	second, _, err := scorm12.Parse(acc, optionsconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMissingManifest(t *testing.T) {
	acc := testfixtures.DetectionFailure()
	_, _, err := scorm12.ParseManifest(acc, optionsconfig.Default())
	require.Error(t, err)
}

// An unrecognized scormtype is a recovered warning under lenient (default)
// options, and a hard failure once StrictEnumValidation is enabled.
func TestUnrecognizedScormTypeIsLenientByDefaultStrictWhenEnabled(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("scorm12-bad-scormtype", map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?>
<manifest identifier="course-1" version="1.0">
  <organizations default="org-id">
    <organization identifier="org-id">
      <title>Course One</title>
      <item identifier="item-1" identifierref="res-id">
        <title>Lesson One</title>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="res-id" type="webcontent" scormtype="bogus" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`,
		"index.html": "<html></html>",
	})

	metadata, warnings, err := scorm12.Parse(acc, optionsconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, "index.html", metadata.LaunchURL)
	assert.NotEmpty(t, warnings.Warnings)

	strict := optionsconfig.Default()
	strict.StrictEnumValidation = true
	_, _, err = scorm12.Parse(acc, strict)
	require.Error(t, err)
}
