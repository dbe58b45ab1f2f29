// Package projection implements Metadata Projection: deriving the uniform ModuleMetadata view from any parsed
// manifest plus the PackageAccess it was parsed from.
package projection

import (
	"time"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/model"
)

// courseLOM is implemented by manifest types that carry a course-level LOM
// tree to fall back to when the manifest's own title/description fields
// are empty.
type courseLOM interface {
	CourseMetadata() *model.LOM
}

// sequencingClassifier is implemented only by *model.SCORM2004Manifest.
type sequencingClassifier interface {
	SequencingLevel() model.SequencingLevel
}

// Project derives the ModuleMetadata view of manifest.
// acc is the same PackageAccess the manifest was parsed from; it is used
// for size_on_disk and the xAPI-support probe.
func Project(manifest model.PackageManifest, acc access.PackageAccess) model.ModuleMetadata {
	title := manifest.ManifestTitle()
	description := manifest.ManifestDescription()
	var keywords []string
	if withLOM, ok := manifest.(courseLOM); ok {
		if lom := withLOM.CourseMetadata(); lom != nil {
			if title == "" {
				title = lom.General.Title.Value
			}
			if description == "" {
				description = lom.General.Description.First()
			}
			keywords = lom.NormalizedKeywords()
		}
	}

	size := int64(-1)
	if acc != nil {
		if s, err := acc.TotalSize(); err == nil {
			size = s
		}
	}

	xapiEnabled := manifest.ManifestKind() == model.KindCMI5 || manifest.ManifestKind() == model.KindXAPI
	if !xapiEnabled && acc != nil {
		if has, err := acc.HasXAPISupport(); err == nil {
			xapiEnabled = has
		}
	}

	level := model.SequencingNone
	if sc, ok := manifest.(sequencingClassifier); ok {
		level = sc.SequencingLevel()
	}

	duration := manifest.ManifestDuration()
	if duration == 0 {
		duration = time.Duration(0)
	}

	return model.ModuleMetadata{
		Kind:            manifest.ManifestKind(),
		Title:           title,
		Description:     description,
		Identifier:      manifest.ManifestIdentifier(),
		Version:         manifest.ManifestVersion(),
		LaunchURL:       manifest.ManifestLaunchURL(),
		Duration:        duration,
		SizeOnDisk:      size,
		XAPIEnabled:     xapiEnabled,
		SequencingLevel: level,
		Keywords:        keywords,
	}
}
