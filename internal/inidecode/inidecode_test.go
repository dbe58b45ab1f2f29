package inidecode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/inidecode"
)

func TestDecodeSectionsAreCaseInsensitive(t *testing.T) {
	doc := `
[Course]
Course_Creator=Acme Corp
Course_Title=Intro to Widgets

[Course_Behavior]
Max_Normal=1
`
	course, err := inidecode.Decode(strings.NewReader(doc), "test.crs")
	require.NoError(t, err)

	section := course.Section("COURSE")
	v, ok := section.Get("course_title")
	require.True(t, ok)
	assert.Equal(t, "Intro to Widgets", v)

	behavior := course.Section("course_behavior")
	v, ok = behavior.Get("Max_Normal")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestDecodeMissingSectionReturnsEmptyMap(t *testing.T) {
	course, err := inidecode.Decode(strings.NewReader("[course]\ncourse_id=abc\n"), "test.crs")
	require.NoError(t, err)
	assert.Empty(t, course.Section("nonexistent"))
}

func TestDecodeBooleanKeyIsPreservedAsValue(t *testing.T) {
	// AllowBooleanKeys: a bare key with no "=" is kept as a key with an
	// empty value rather than rejected as malformed.
	course, err := inidecode.Decode(strings.NewReader("[course]\nstandalone_flag\n"), "test.crs")
	require.NoError(t, err)
	v, ok := course.Section("course").Get("standalone_flag")
	require.True(t, ok)
	assert.Empty(t, v)
}
