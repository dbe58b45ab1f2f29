package common_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

func TestDecodeSequencingNilNodeReturnsNil(t *testing.T) {
	assert.Nil(t, common.DecodeSequencing(nil, elmerrors.NewWarningList()))
}

func TestDecodeSequencingControlModeDefaults(t *testing.T) {
	doc := `<sequencing><controlmode choice="false"/></sequencing>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	s := common.DecodeSequencing(root, elmerrors.NewWarningList())
	require.NotNil(t, s)
	assert.False(t, s.ControlMode.Choice)
	// flow is absent here, so it keeps IMS SS's declared default of false.
	assert.False(t, s.ControlMode.Flow)
}

func TestDecodeSequencingRollupAndObjectiveMapping(t *testing.T) {
	doc := `<sequencing>
		<rollupruleset>
			<rolluprule>
				<rollupconditions><rollupcondition condition="satisfied"/></rollupconditions>
				<rollupaction action="satisfied"/>
			</rolluprule>
		</rollupruleset>
		<objectives>
			<primaryobjective objectiveid="obj1">
				<mapinfo targetobjectiveid="global-obj1" readsatisfiedstatus="true" writesatisfiedstatus="true"/>
			</primaryobjective>
		</objectives>
	</sequencing>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	s := common.DecodeSequencing(root, elmerrors.NewWarningList())
	require.NotNil(t, s)
	assert.True(t, s.HasRollup())
	assert.True(t, s.HasObjectiveMapping())
	require.NotNil(t, s.Objectives.Primary)
	assert.Equal(t, "obj1", s.Objectives.Primary.ObjectiveID)
	require.Len(t, s.Objectives.Primary.Mapping, 1)
	assert.Equal(t, "global-obj1", s.Objectives.Primary.Mapping[0].TargetObjectiveID)
}

func TestDecodeSequencingWithoutRollupOrMappingIsMinimal(t *testing.T) {
	doc := `<sequencing><controlmode choice="true"/></sequencing>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	s := common.DecodeSequencing(root, elmerrors.NewWarningList())
	require.NotNil(t, s)
	assert.False(t, s.HasRollup())
	assert.False(t, s.HasObjectiveMapping())
}
