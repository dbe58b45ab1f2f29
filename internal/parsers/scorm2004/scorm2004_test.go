package scorm2004_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/parsers/scorm2004"
	"github.com/standardbeagle/elmparse/internal/testfixtures"
)

// Full sequencing classification, and the underlying mapping/rollup
// rule, are visible on the typed tree.
func TestParseFullSequencing(t *testing.T) {
	manifest, _, err := scorm2004.ParseManifest(testfixtures.SCORM2004FullSequencing(), nil, optionsconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, model.SequencingFull, manifest.SequencingLevel())

	org := manifest.Organizations.Default()
	require.Len(t, org.Items, 2)
	seq := org.Items[1].Sequencing
	require.NotNil(t, seq)
	require.NotNil(t, seq.Objectives.Primary)
	assert.Equal(t, "course_score", seq.Objectives.Primary.ObjectiveID)
	require.Len(t, seq.Objectives.Primary.Mapping, 1)
	assert.Equal(t, "com.x.course_score", seq.Objectives.Primary.Mapping[0].TargetObjectiveID)
	assert.False(t, seq.Objectives.Primary.Mapping[0].ReadSatisfiedStatus)
	assert.True(t, seq.Objectives.Primary.Mapping[0].ReadNormalizedMeasure)
	require.Len(t, seq.RollupRules, 1)
	assert.Equal(t, model.RollupActionType("satisfied"), seq.RollupRules[0].Action)
}

// sequencing_level must be none iff no item carries <imsss:sequencing>.
func TestSequencingNoneWithoutAnyDeclaration(t *testing.T) {
	metadata, _, err := scorm2004.Parse(testfixtures.SCORM12HappyPath(), nil, optionsconfig.Default())
	require.NoError(t, err)
	assert.Equal(t, model.SequencingNone, metadata.SequencingLevel)
}

func TestSchemaValidationRejectsEmptyIdentifier(t *testing.T) {
	validator, err := scorm2004.NewValidator("")
	require.NoError(t, err)
	err = validator.Validate("imsmanifest.xml", "", "1.0", 1, 1)
	assert.Error(t, err)
}

func TestSchemaValidationAcceptsWellFormedShape(t *testing.T) {
	validator, err := scorm2004.NewValidator("")
	require.NoError(t, err)
	err = validator.Validate("imsmanifest.xml", "course-2", "1.0", 1, 2)
	assert.NoError(t, err)
}
