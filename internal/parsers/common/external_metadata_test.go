package common_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

func TestResolveMetadataPrefersInlineLOM(t *testing.T) {
	doc := `<metadata><lom><general><title><string language="en">Inline</string></title></general></lom></metadata>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "imsmanifest.xml")
	require.NoError(t, err)

	acc := testfixtures.NewMemoryAccess("pkg", map[string]string{})
	lom, warn := common.ResolveMetadata(acc, root, "", "organization.metadata", elmerrors.NewWarningList())
	require.Nil(t, warn)
	require.NotNil(t, lom)
	assert.Equal(t, "Inline", lom.General.Title.Value)
}

func TestResolveMetadataFallsBackToExternalLocation(t *testing.T) {
	doc := `<metadata><location>metadata/course.xml</location></metadata>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "imsmanifest.xml")
	require.NoError(t, err)

	acc := testfixtures.NewMemoryAccess("pkg", map[string]string{
		"metadata/course.xml": `<lom><general><title><string language="en">External</string></title></general></lom>`,
	})
	lom, warn := common.ResolveMetadata(acc, root, "", "organization.metadata", elmerrors.NewWarningList())
	require.Nil(t, warn)
	require.NotNil(t, lom)
	assert.Equal(t, "External", lom.General.Title.Value)
}

func TestResolveMetadataMissingExternalFileWarnsNotFails(t *testing.T) {
	doc := `<metadata><location>metadata/missing.xml</location></metadata>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "imsmanifest.xml")
	require.NoError(t, err)

	acc := testfixtures.NewMemoryAccess("pkg", map[string]string{})
	lom, warn := common.ResolveMetadata(acc, root, "", "organization.metadata", elmerrors.NewWarningList())
	assert.Nil(t, lom)
	require.NotNil(t, warn)
	assert.Contains(t, warn.Message, "not found")
}

func TestResolveMetadataNilNodeReturnsNil(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("pkg", map[string]string{})
	lom, warn := common.ResolveMetadata(acc, nil, "", "organization.metadata", elmerrors.NewWarningList())
	assert.Nil(t, lom)
	assert.Nil(t, warn)
}

func TestManifestDirRootLevelManifestIsEmpty(t *testing.T) {
	assert.Equal(t, "", common.ManifestDir("imsmanifest.xml"))
	assert.Equal(t, "sub", common.ManifestDir("sub/imsmanifest.xml"))
}
