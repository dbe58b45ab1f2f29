// Package cmi5 implements the cmi5 format parser.
package cmi5

import (
	"github.com/standardbeagle/elmparse/internal/access"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/projection"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

const manifestName = "cmi5.xml"

// ParseManifest locates and decodes cmi5.xml into a *model.CMI5Manifest.
func ParseManifest(acc access.PackageAccess) (*model.CMI5Manifest, *elmerrors.WarningList, error) {
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

	m := &model.CMI5Manifest{}
	if courseNode := root.Child("course"); courseNode != nil {
		m.Course.ID, _ = courseNode.Attr("id")
		if title := courseNode.Child("title"); title != nil {
			m.Course.Title = decodeLangStrings(title)
		}
		if desc := courseNode.Child("description"); desc != nil {
			m.Course.Description = decodeLangStrings(desc)
		}
	}

	for _, auNode := range root.ChildrenNamed("au") {
		au := model.CMI5AssignableUnit{}
		au.ActivityID, _ = auNode.Attr("id")
		if title := auNode.Child("title"); title != nil {
			au.Title = decodeLangStrings(title)
		}
		if desc := auNode.Child("description"); desc != nil {
			au.Description = decodeLangStrings(desc)
		}
		if url := auNode.Child("url"); url != nil {
			au.LaunchURL = url.Text
		}
		au.LaunchMethod, _ = auNode.Attr("launchmethod")
		au.MoveOn, _ = auNode.Attr("moveon")
		if raw, ok := auNode.Attr("masteryscore"); ok {
			v, warn := xmlutil.ParseFloatLenient("au.masteryScore", raw, 0)
			if warn != nil {
				warnings.Add(warn.FieldPath, warn.Message)
			}
			au.MasteryScore = &v
			au.HasMasteryScore = true
		}
		m.AssignableUnits = append(m.AssignableUnits, au)
	}

	if m.Course.Title.First() == "" {
		return nil, warnings, common.MissingField(manifestPath, "course.title")
	}
	if len(m.AssignableUnits) == 0 || m.AssignableUnits[0].LaunchURL == "" {
		return nil, warnings, common.MissingField(manifestPath, "au[0].url")
	}

	return m, warnings, nil
}

func decodeLangStrings(n *xmlutil.Node) model.UnboundLangString {
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
// cmi5 packages are always xAPI-enabled, handled by the
// projection layer keying off ManifestKind.
func Parse(acc access.PackageAccess) (model.ModuleMetadata, *elmerrors.WarningList, error) {
	manifest, warnings, err := ParseManifest(acc)
	if err != nil {
		return model.ModuleMetadata{}, warnings, err
	}
	return projection.Project(manifest, acc), warnings, nil
}
