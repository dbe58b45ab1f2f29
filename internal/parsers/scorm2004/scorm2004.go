// Package scorm2004 implements the SCORM 2004 format parser: SCORM 1.2's manifest shape plus IMS Simple Sequencing and an
// optional schema-validation gate.
package scorm2004

import (
	"github.com/standardbeagle/elmparse/internal/access"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/optionsconfig"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/projection"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

const manifestName = "imsmanifest.xml"

// ParseManifest locates and decodes imsmanifest.xml into a
// *model.SCORM2004Manifest. validator is nil when schema validation is
// disabled.
func ParseManifest(acc access.PackageAccess, validator *Validator, opts optionsconfig.ParserOptions) (*model.SCORM2004Manifest, *elmerrors.WarningList, error) {
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

	manifestDir := common.ManifestDir(manifestPath)

	m := &model.SCORM2004Manifest{}
	m.Identifier, _ = root.Attr("identifier")
	m.Version, _ = root.Attr("version")
	m.Organizations = common.DecodeOrganizations(root.Child("organizations"), true, warnings)
	m.Resources = common.DecodeResources(root.Child("resources"), warnings)

	if validator != nil {
		if err := validator.Validate(manifestPath, m.Identifier, m.Version, len(m.Organizations.Organizations), len(m.Resources)); err != nil {
			return nil, warnings, err
		}
	}

	if metaNode := root.Child("metadata"); metaNode != nil {
		lom, warn := common.ResolveMetadata(acc, metaNode, manifestDir, "manifest.metadata", warnings)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		m.Metadata = lom
	}

	if err := common.PopulateFileExistence(acc, m.Resources, opts.MaxResourceBatch); err != nil {
		return nil, warnings, err
	}

	org := m.Organizations.Default()
	if org != nil {
		m.Title = org.Title
	}
	if m.Title == "" && m.Metadata != nil {
		m.Title = m.Metadata.General.Title.Value
	}

	resourceIndex := model.BuildResourceIndex(m.Resources)
	if href, ok := model.FirstLeafLaunchHref(org, resourceIndex); ok {
		m.LaunchURL = href
	}

	if m.Title == "" {
		return nil, warnings, common.MissingField(manifestPath, "organization.title")
	}
	if m.LaunchURL == "" {
		return nil, warnings, common.MissingField(manifestPath, "launch_url")
	}

	if opts.StrictEnumValidation {
		if bad := common.EnumWarnings(warnings); len(bad) > 0 {
			return nil, warnings, elmerrors.NewStrictValidationFailure(manifestPath, bad)
		}
	}

	return m, warnings, nil
}

// Parse runs ParseManifest and projects the result to ModuleMetadata.
func Parse(acc access.PackageAccess, validator *Validator, opts optionsconfig.ParserOptions) (model.ModuleMetadata, *elmerrors.WarningList, error) {
	manifest, warnings, err := ParseManifest(acc, validator, opts)
	if err != nil {
		return model.ModuleMetadata{}, warnings, err
	}
	return projection.Project(manifest, acc), warnings, nil
}
