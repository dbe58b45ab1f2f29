package common

import (
	"path"

	"github.com/standardbeagle/elmparse/internal/access"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

// ResolveMetadata returns the LOM tree for a <metadata> element: an inline
// <lom> child if present, otherwise the external file named by its
// <adlcp:location> (SCORM only), resolved relative to manifestDir. A
// missing external file is reported as a warning, never a parse failure
//.
func ResolveMetadata(acc access.PackageAccess, metaNode *xmlutil.Node, manifestDir, fieldPath string, warnings *elmerrors.WarningList) (*model.LOM, *elmerrors.Warning) {
	if metaNode == nil {
		return nil, nil
	}
	if lom := metaNode.Child("lom"); lom != nil {
		return DecodeLOM(lom, warnings), nil
	}
	loc := metaNode.Child("location")
	if loc == nil || loc.Text == "" {
		return nil, nil
	}
	fullPath := path.Join(manifestDir, loc.Text)
	rc, err := acc.Read(fullPath)
	if err != nil {
		return nil, &elmerrors.Warning{FieldPath: fieldPath, Message: "external metadata file " + fullPath + " not found"}
	}
	defer rc.Close()
	root, decodeErr := xmlutil.Decode(rc, fullPath)
	if decodeErr != nil {
		return nil, &elmerrors.Warning{FieldPath: fieldPath, Message: "external metadata file " + fullPath + " failed to parse"}
	}
	lomNode := root
	if root.Name != "lom" {
		lomNode = root.Child("lom")
	}
	return DecodeLOM(lomNode, warnings), nil
}

// ManifestDir returns the directory portion of a manifest path, using ""
// for a bare filename at the package root.
func ManifestDir(manifestPath string) string {
	dir := path.Dir(manifestPath)
	if dir == "." {
		return ""
	}
	return dir
}
