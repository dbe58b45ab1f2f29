package projection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm12"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm2004"
	"github.com/standardbeagle/elmparse/internal/projection"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// Keywords on the projected view are the LOM's stemmed, de-duplicated
// classification and general.keyword values, so two inflections of the
// same word ("assessment"/"assessments") collapse to one entry.
func TestProjectDerivesStemmedKeywords(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("scorm12-keywords", map[string]string{
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
    <resource identifier="res-id" type="webcontent" scormtype="sco" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
  <metadata>
    <lom>
      <general>
        <keyword><string language="en">assessment</string></keyword>
      </general>
      <classification>
        <purpose><value>discipline</value></purpose>
        <keyword><string language="en">assessments</string></keyword>
      </classification>
    </lom>
  </metadata>
</manifest>`,
		"index.html": "<html></html>",
	})

	manifest, _, err := scorm12.ParseManifest(acc, optionsconfig.Default())
	require.NoError(t, err)

	metadata := projection.Project(manifest, acc)
	assert.Len(t, metadata.Keywords, 1)
}

// Projecting a manifest must not mutate it. Re-deriving ModuleMetadata
// after a first projection must observe the manifest unchanged.
func TestProjectDoesNotMutateManifest(t *testing.T) {
	acc := testfixtures.SCORM12HappyPath()
	manifest, _, err := scorm12.ParseManifest(acc, optionsconfig.Default())
	require.NoError(t, err)

	beforeTitle := manifest.ManifestTitle()
	beforeIdentifier := manifest.ManifestIdentifier()
	beforeOrgCount := len(manifest.Organizations.Organizations)

	first := projection.Project(manifest, acc)

	assert.Equal(t, beforeTitle, manifest.ManifestTitle())
	assert.Equal(t, beforeIdentifier, manifest.ManifestIdentifier())
	assert.Equal(t, beforeOrgCount, len(manifest.Organizations.Organizations))

	second := projection.Project(manifest, acc)
	assert.Equal(t, first, second)
}

func TestProjectDoesNotMutateSCORM2004Manifest(t *testing.T) {
	acc := testfixtures.SCORM2004FullSequencing()
	manifest, _, err := scorm2004.ParseManifest(acc, nil, optionsconfig.Default())
	require.NoError(t, err)

	beforeLevel := manifest.SequencingLevel()
	first := projection.Project(manifest, acc)
	assert.Equal(t, beforeLevel, manifest.SequencingLevel())

	second := projection.Project(manifest, acc)
	assert.Equal(t, first, second)
}
