package xmlutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

func TestFindFileIgnoreCaseMatchesAnyCasing(t *testing.T) {
	entries := []string{"course/IMSMANIFEST.XML", "course/assets/index.html"}

	got, ok := xmlutil.FindFileIgnoreCase(entries, "imsmanifest.xml")
	assert.True(t, ok)
	assert.Equal(t, "course/IMSMANIFEST.XML", got)
}

func TestFindFileIgnoreCaseNoMatch(t *testing.T) {
	_, ok := xmlutil.FindFileIgnoreCase([]string{"a.xml"}, "imsmanifest.xml")
	assert.False(t, ok)
}
