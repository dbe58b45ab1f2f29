package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// PackageManifest is the format-neutral capability set every parsed
// manifest exposes. Concrete manifest types
// (SCORM12Manifest, SCORM2004Manifest, *AICCManifest, *CMI5Manifest,
// *TinCanManifest) implement it with read-only accessors over the parsed
// fields, so projecting a manifest never mutates it.
type PackageManifest interface {
	ManifestTitle() string
	ManifestDescription() string
	ManifestIdentifier() string
	ManifestVersion() string
	ManifestLaunchURL() string
	ManifestDuration() time.Duration
	ManifestKind() ModuleKind
}

// SCORM12Manifest is the parsed imsmanifest.xml tree for a SCORM 1.2
// package.
type SCORM12Manifest struct {
	Identifier    string
	Version       string
	Organizations Organizations
	Resources     []*Resource
	Metadata      *LOM

	Title     string
	LaunchURL string
}

func (m *SCORM12Manifest) ManifestTitle() string            { return m.Title }
func (m *SCORM12Manifest) ManifestDescription() string {
	if m.Metadata != nil {
		return m.Metadata.General.Description.First()
	}
	return ""
}
func (m *SCORM12Manifest) ManifestIdentifier() string { return m.Identifier }
func (m *SCORM12Manifest) ManifestVersion() string    { return m.Version }
func (m *SCORM12Manifest) ManifestLaunchURL() string  { return m.LaunchURL }
func (m *SCORM12Manifest) ManifestDuration() time.Duration {
	if m.Metadata != nil {
		return m.Metadata.Technical.Duration.Duration
	}
	return 0
}
func (m *SCORM12Manifest) ManifestKind() ModuleKind { return KindSCORM12 }

// CourseMetadata exposes the manifest-level LOM tree for the projection
// layer's title/description fallback.
func (m *SCORM12Manifest) CourseMetadata() *LOM { return m.Metadata }

// SCORM2004Manifest is the parsed imsmanifest.xml tree for a SCORM 2004
// package, identical in shape to SCORM 1.2 plus sequencing.
type SCORM2004Manifest struct {
	Identifier    string
	Version       string
	Organizations Organizations
	Resources     []*Resource
	Metadata      *LOM

	Title     string
	LaunchURL string
}

func (m *SCORM2004Manifest) ManifestTitle() string { return m.Title }
func (m *SCORM2004Manifest) ManifestDescription() string {
	if m.Metadata != nil {
		return m.Metadata.General.Description.First()
	}
	return ""
}
func (m *SCORM2004Manifest) ManifestIdentifier() string { return m.Identifier }
func (m *SCORM2004Manifest) ManifestVersion() string    { return m.Version }
func (m *SCORM2004Manifest) ManifestLaunchURL() string  { return m.LaunchURL }
func (m *SCORM2004Manifest) ManifestDuration() time.Duration {
	if m.Metadata != nil {
		return m.Metadata.Technical.Duration.Duration
	}
	return 0
}
func (m *SCORM2004Manifest) ManifestKind() ModuleKind { return KindSCORM2004 }

// CourseMetadata exposes the manifest-level LOM tree for the projection
// layer's title/description fallback.
func (m *SCORM2004Manifest) CourseMetadata() *LOM { return m.Metadata }

// SequencingLevel classifies this manifest's sequencing declarations:
// none iff no item declares sequencing at all, full iff any item's
// sequencing has a rollup rule or a cross-activity objective mapping,
// multi iff more than one item declares sequencing without qualifying as
// full, minimal otherwise.
func (m *SCORM2004Manifest) SequencingLevel() SequencingLevel {
	var count int
	var full bool
	for _, org := range m.Organizations.Organizations {
		for _, root := range org.Items {
			root.Walk(func(it *Item) {
				if it.Sequencing == nil {
					return
				}
				count++
				if it.Sequencing.HasRollup() || it.Sequencing.HasObjectiveMapping() {
					full = true
				}
			})
		}
	}
	switch {
	case count == 0:
		return SequencingNone
	case full:
		return SequencingFull
	case count > 1:
		return SequencingMulti
	default:
		return SequencingMinimal
	}
}

// AICC manifest contract.
func (m *AICCManifest) ManifestTitle() string            { return m.Title }
func (m *AICCManifest) ManifestDescription() string      { return "" }
func (m *AICCManifest) ManifestIdentifier() string       { return m.Identifier }
func (m *AICCManifest) ManifestVersion() string          { return "" }
func (m *AICCManifest) ManifestLaunchURL() string        { return m.LaunchURL }
func (m *AICCManifest) ManifestDuration() time.Duration  { return 0 }
func (m *AICCManifest) ManifestKind() ModuleKind          { return KindAICC }

// CMI5 manifest contract.
func (m *CMI5Manifest) ManifestTitle() string       { return m.Course.Title.First() }
func (m *CMI5Manifest) ManifestDescription() string { return m.Course.Description.First() }
func (m *CMI5Manifest) ManifestIdentifier() string  { return m.Course.ID }
func (m *CMI5Manifest) ManifestVersion() string     { return "" }
func (m *CMI5Manifest) ManifestLaunchURL() string {
	if len(m.AssignableUnits) == 0 {
		return ""
	}
	return m.AssignableUnits[0].LaunchURL
}
func (m *CMI5Manifest) ManifestDuration() time.Duration { return 0 }
func (m *CMI5Manifest) ManifestKind() ModuleKind         { return KindCMI5 }

// TinCan (xAPI) manifest contract.
func (m *TinCanManifest) ManifestTitle() string {
	if a, ok := m.ChosenActivity(); ok {
		return a.Name.First()
	}
	return ""
}
func (m *TinCanManifest) ManifestDescription() string {
	if a, ok := m.ChosenActivity(); ok {
		return a.Description.First()
	}
	return ""
}
func (m *TinCanManifest) ManifestIdentifier() string {
	if a, ok := m.ChosenActivity(); ok {
		return a.ID
	}
	return ""
}
func (m *TinCanManifest) ManifestVersion() string { return "" }
func (m *TinCanManifest) ManifestLaunchURL() string {
	if a, ok := m.ChosenActivity(); ok {
		return a.LaunchURL
	}
	return ""
}
func (m *TinCanManifest) ManifestDuration() time.Duration { return 0 }
func (m *TinCanManifest) ManifestKind() ModuleKind         { return KindXAPI }

// ModuleMetadata is the uniform projection value every parse produces.
// It is built once by the projection layer and never mutated afterward.
type ModuleMetadata struct {
	Kind            ModuleKind
	Title           string
	Description     string
	Identifier      string
	Version         string
	LaunchURL       string
	Duration        time.Duration
	SizeOnDisk      int64 // bytes; -1 when unknown
	XAPIEnabled     bool
	SequencingLevel SequencingLevel
	Keywords        []string // stemmed, de-duplicated; see LOM.NormalizedKeywords
}

// moduleMetadataJSON is the JSON wire shape for ModuleMetadata:
// ModuleKind/SequencingLevel serialize as their string tag and Duration as
// its Go string form, since both survive a byte-for-byte round trip.
type moduleMetadataJSON struct {
	Kind            string   `json:"kind"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Identifier      string   `json:"identifier"`
	Version         string   `json:"version"`
	LaunchURL       string   `json:"launchUrl"`
	Duration        string   `json:"duration"`
	SizeOnDisk      int64    `json:"sizeOnDisk"`
	XAPIEnabled     bool     `json:"xapiEnabled"`
	SequencingLevel string   `json:"sequencingLevel"`
	Keywords        []string `json:"keywords,omitempty"`
}

func (m ModuleMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(moduleMetadataJSON{
		Kind:            string(m.Kind),
		Title:           m.Title,
		Description:     m.Description,
		Identifier:      m.Identifier,
		Version:         m.Version,
		LaunchURL:       m.LaunchURL,
		Duration:        m.Duration.String(),
		SizeOnDisk:      m.SizeOnDisk,
		XAPIEnabled:     m.XAPIEnabled,
		SequencingLevel: string(m.SequencingLevel),
		Keywords:        m.Keywords,
	})
}

func (m *ModuleMetadata) UnmarshalJSON(data []byte) error {
	var wire moduleMetadataJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	d, err := time.ParseDuration(wire.Duration)
	if err != nil {
		return fmt.Errorf("moduleMetadata: invalid duration %q: %w", wire.Duration, err)
	}
	*m = ModuleMetadata{
		Kind:            ModuleKind(wire.Kind),
		Title:           wire.Title,
		Description:     wire.Description,
		Identifier:      wire.Identifier,
		Version:         wire.Version,
		LaunchURL:       wire.LaunchURL,
		Duration:        d,
		SizeOnDisk:      wire.SizeOnDisk,
		XAPIEnabled:     wire.XAPIEnabled,
		SequencingLevel: SequencingLevel(wire.SequencingLevel),
		Keywords:        wire.Keywords,
	}
	return nil
}
