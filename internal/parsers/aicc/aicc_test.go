package aicc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/parsers/aicc"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// A minimum viable AICC course parses cleanly.
func TestParseMinimumViable(t *testing.T) {
	metadata, warnings, err := aicc.Parse(testfixtures.AICCMinimumViable())
	require.NoError(t, err)
	assert.Empty(t, warnings.Warnings)
	assert.Equal(t, model.KindAICC, metadata.Kind)
	assert.Equal(t, "Hello", metadata.Title)
	assert.Equal(t, "start.html", metadata.LaunchURL)
}

func TestMissingDesAuCstWarnsThenFailsWithoutLaunchURL(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("aicc-partial", map[string]string{
		"a.crs": "[Course_Data]\nCourse_Title=Partial\n",
	})
	_, warnings, err := aicc.ParseManifest(acc)
	require.Error(t, err) // no assignable units means no launch URL
	assert.NotEmpty(t, warnings.Warnings)
}

func TestBlankPrerequisiteRowsAreRemoved(t *testing.T) {
	acc := testfixtures.NewMemoryAccess("aicc-pre", map[string]string{
		"a.crs": "[Course_Data]\nCourse_Title=Hello\n",
		"a.des": "system_id,title,description\nAU1,Unit One,First unit\n",
		"a.au":  "system_id,type,file_name,mastery_score,max_time_allowed,time_limit_action,core_vendor\nAU1,normal,start.html,80,01:00:00,continue,\n",
		"a.cst": "block,member\nROOT,AU1\n",
		"a.pre": "system_id,prerequisites\nAU1,\n,\n",
	})
	manifest, _, err := aicc.ParseManifest(acc)
	require.NoError(t, err)
	assert.Len(t, manifest.Prerequisites, 1)
}
