package xmlutil

import (
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// aliasThreshold is the minimum Jaro-Winkler similarity a misspelled
// element name must clear against a known alias before ChildOrAlias
// accepts it.
const aliasThreshold = 0.85

// ChildOrAlias resolves a direct child by exact name first, then by any of
// the supplied known aliases (also exact), then falls back to fuzzy
// Jaro-Winkler matching against every direct child's name. A fuzzy match
// returns a Warning identifying the substitution made; an exact match
// returns no warning at all.
func (n *Node) ChildOrAlias(fieldPath, name string, aliases ...string) (*Node, *elmerrors.Warning) {
	if c := n.Child(name); c != nil {
		return c, nil
	}
	for _, alias := range aliases {
		if c := n.Child(alias); c != nil {
			return c, nil
		}
	}
	candidates := n.ChildNames()
	if len(candidates) == 0 {
		return nil, nil
	}
	match, err := edlib.FuzzySearchThreshold(strings.ToLower(name), candidates, aliasThreshold, edlib.JaroWinkler)
	if err != nil || match == "" {
		return nil, nil
	}
	return n.Child(match), &elmerrors.Warning{
		FieldPath: fieldPath,
		Message:   "element " + strconv.Quote(name) + " not found; used similarly-named element " + strconv.Quote(match),
	}
}
