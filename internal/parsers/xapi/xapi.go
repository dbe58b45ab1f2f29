// Package xapi implements the xAPI/TinCan format parser.
package xapi

import (
	"github.com/standardbeagle/elmparse/internal/access"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/projection"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

const manifestName = "tincan.xml"

// ParseManifest locates and decodes tincan.xml into a
// *model.TinCanManifest.
func ParseManifest(acc access.PackageAccess) (*model.TinCanManifest, *elmerrors.WarningList, error) {
	warnings := elmerrors.NewWarningList()

	entries, _ := acc.List("")
	manifestPath, found := xmlutil.FindFileIgnoreCase(entries, manifestName)
	if !found {
		return nil, warnings, elmerrors.NewMissingManifest(manifestName, acc.RootPath())
	}

	rc, err := acc.Read(manifestPath)
	if err != nil {
		return nil, warnings, err
	}
	defer rc.Close()

	root, err := xmlutil.Decode(rc, manifestPath)
	if err != nil {
		return nil, warnings, err
	}

	m := &model.TinCanManifest{}
	activitiesNode := root.Child("activities")
	if activitiesNode == nil {
		activitiesNode = root
	}
	for _, actNode := range activitiesNode.ChildrenNamed("activity") {
		a := model.TinCanActivity{}
		a.ID, _ = actNode.Attr("id")
		if defNode := actNode.Child("activitydefinition"); defNode != nil {
			a.Type, _ = defNode.Attr("type")
			if t := defNode.Child("type"); t != nil {
				a.Type = t.Text
			}
			if name := defNode.Child("name"); name != nil {
				a.Name = decodeLangMap(name)
			}
			if desc := defNode.Child("description"); desc != nil {
				a.Description = decodeLangMap(desc)
			}
			if launch := defNode.Child("launch"); launch != nil {
				a.LaunchURL = launch.Text
			}
		}
		m.Activities = append(m.Activities, a)
	}

	chosen, ok := m.ChosenActivity()
	if !ok || chosen.Name.First() == "" {
		return nil, warnings, common.MissingField(manifestPath, "activity.name")
	}
	if chosen.LaunchURL == "" {
		return nil, warnings, common.MissingField(manifestPath, "activity.launch")
	}

	return m, warnings, nil
}

// decodeLangMap handles TinCan's <name><langstring lang="en">Value</langstring></name>
// as well as the occasional flattened single-language shorthand.
func decodeLangMap(n *xmlutil.Node) model.UnboundLangString {
	var out model.UnboundLangString
	for _, ls := range n.ChildrenNamed("langstring") {
		lang, _ := ls.Attr("lang")
		out = append(out, model.LangString{Language: lang, Value: ls.Text})
	}
	if len(out) == 0 && n.Text != "" {
		out = append(out, model.LangString{Value: n.Text})
	}
	return out
}

// Parse runs ParseManifest and projects the result to ModuleMetadata.
func Parse(acc access.PackageAccess) (model.ModuleMetadata, *elmerrors.WarningList, error) {
	manifest, warnings, err := ParseManifest(acc)
	if err != nil {
		return model.ModuleMetadata{}, warnings, err
	}
	return projection.Project(manifest, acc), warnings, nil
}
