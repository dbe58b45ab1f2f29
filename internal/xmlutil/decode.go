package xmlutil

import (
	"encoding/xml"
	"io"
	"strings"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// Decode streams r through encoding/xml and builds a Node tree rooted at
// the document element. encoding/xml has no DTD support and resolves only
// the five predefined XML entities, so no external entity or DTD fetch can
// ever occur here regardless of document content.
//
// Namespace prefixes are stripped during decoding: xml.Name.Local is used
// for every element and attribute name, so "adlcp:scormType" and
// "scormType" collapse to the same Node field.
func Decode(r io.Reader, sourcePath string) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.Entity = nil // no custom entities: only lt/gt/amp/apos/quot resolve

	var stack []*Node
	var root *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, elmerrors.NewManifestParseError(sourcePath, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			n := newNode(t.Name.Local)
			for _, a := range t.Attr {
				n.Attrs[strings.ToLower(a.Name.Local)] = a.Value
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			cur := stack[len(stack)-1]
			cur.Text = TrimIndentation(cur.Text)
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			stack[len(stack)-1].Text += string(t)
		}
	}
	if root == nil {
		return nil, elmerrors.NewManifestParseError(sourcePath, io.ErrUnexpectedEOF)
	}
	return root, nil
}
