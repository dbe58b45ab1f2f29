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

func TestDecodeLOMGeneralAndTechnical(t *testing.T) {
	doc := `<lom>
		<general>
			<title><string language="en">Intro to Widgets</string></title>
			<language>en</language>
			<description><string language="en">A course about widgets.</string></description>
		</general>
		<technical>
			<duration><duration>PT1H30M</duration></duration>
		</technical>
	</lom>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	lom := common.DecodeLOM(root, elmerrors.NewWarningList())
	require.NotNil(t, lom)
	assert.Equal(t, "Intro to Widgets", lom.General.Title.Value)
	assert.Equal(t, "en", lom.General.Title.Language)
	assert.Equal(t, []string{"en"}, lom.General.Language)
	assert.Equal(t, "A course about widgets.", lom.General.Description.First())
	assert.Equal(t, "1h30m0s", lom.Technical.Duration.Duration.String())
}

func TestDecodeLOMNilNodeReturnsNil(t *testing.T) {
	assert.Nil(t, common.DecodeLOM(nil, elmerrors.NewWarningList()))
}

func TestDecodeLOMRelationsAndClassifications(t *testing.T) {
	doc := `<lom>
		<relation>
			<kind><value>ispartof</value></kind>
			<resource><identifier><catalog>URI</catalog><entry>course-1</entry></identifier></resource>
		</relation>
		<classification>
			<purpose><value>discipline</value></purpose>
		</classification>
	</lom>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "test.xml")
	require.NoError(t, err)

	lom := common.DecodeLOM(root, elmerrors.NewWarningList())
	require.Len(t, lom.Relations, 1)
	require.Len(t, lom.Classifications, 1)
}
