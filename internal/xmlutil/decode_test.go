package xmlutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

// Swapping element/attribute case anywhere in the input must yield
// identical parsed output, since Decode lowercases every name.
func TestDecodeIsCaseInsensitive(t *testing.T) {
	lower := `<Manifest Identifier="c1"><Organizations><Organization Identifier="o1"><Title>Hi</Title></Organization></Organizations></Manifest>`
	upper := `<MANIFEST IDENTIFIER="c1"><ORGANIZATIONS><ORGANIZATION IDENTIFIER="o1"><TITLE>Hi</TITLE></ORGANIZATION></ORGANIZATIONS></MANIFEST>`

	lowerNode, err := xmlutil.Decode(strings.NewReader(lower), "lower.xml")
	require.NoError(t, err)
	upperNode, err := xmlutil.Decode(strings.NewReader(upper), "upper.xml")
	require.NoError(t, err)

	extract := func(n *xmlutil.Node) (string, string) {
		id, _ := n.Attr("identifier")
		org := n.Child("organizations").Child("organization")
		orgID, _ := org.Attr("identifier")
		return id, orgID + ":" + org.Child("title").Text
	}
	lid, lrest := extract(lowerNode)
	uid, urest := extract(upperNode)
	assert.Equal(t, lid, uid)
	assert.Equal(t, lrest, urest)
}

func TestDecodeStripsNamespacePrefixes(t *testing.T) {
	doc := `<manifest xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_v1p3"><resources><resource adlcp:scormType="sco"/></resources></manifest>`
	root, err := xmlutil.Decode(strings.NewReader(doc), "ns.xml")
	require.NoError(t, err)
	res := root.Child("resources").Child("resource")
	v, ok := res.Attr("scormtype")
	require.True(t, ok)
	assert.Equal(t, "sco", v)
}

func TestDecodeDisallowsExternalEntities(t *testing.T) {
	// encoding/xml has no DTD support at all, so an external-entity
	// reference simply fails to resolve rather than being fetched.
	doc := `<!DOCTYPE foo [<!ENTITY xxe SYSTEM "file:///etc/passwd">]><foo>&xxe;</foo>`
	_, err := xmlutil.Decode(strings.NewReader(doc), "xxe.xml")
	assert.Error(t, err)
}
