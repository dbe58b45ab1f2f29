package cmi5_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/parsers/cmi5"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// cmi5 courses are always xAPI-enabled.
func TestParseAlwaysXAPI(t *testing.T) {
	metadata, _, err := cmi5.Parse(testfixtures.CMI5AlwaysXAPI())
	require.NoError(t, err)
	assert.Equal(t, model.KindCMI5, metadata.Kind)
	assert.True(t, metadata.XAPIEnabled)
	assert.Equal(t, "launch.html", metadata.LaunchURL)
	assert.Equal(t, "T", metadata.Title)
}

func TestMissingCourseTitleFails(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("cmi5-notitle", map[string]string{
		"cmi5.xml": `<?xml version="1.0"?>
<courseStructure>
  <course id="https://example.com/course"></course>
  <au id="https://example.com/au1"><url>launch.html</url></au>
</courseStructure>`,
	})
	_, _, err := cmi5.ParseManifest(acc)
	assert.Error(t, err)
}
