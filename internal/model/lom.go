package model

import "time"

// LangString is a single language-tagged string value.
// Language is the empty string when the source element carried no
// xml:lang / language attribute.
type LangString struct {
	Language string
	Value    string
}

// UnboundLangString is an ordered sequence of LangString: the element may
// repeat in the source (e.g. <description> in several languages).
type UnboundLangString []LangString

// First returns the first value, or the empty string if there are none.
// Used by the projection layer to pick a display title/description.
func (u UnboundLangString) First() string {
	if len(u) == 0 {
		return ""
	}
	return u[0].Value
}

// SingleLangString is exactly one LangString (e.g. lifecycle.version).
type SingleLangString = LangString

// SourceValuePair pairs a vocabulary source with a closed-enum value, the
// recurring LOM "source/value" shape.
type SourceValuePair[T any] struct {
	Source string
	Value  T
}

// LomDuration pairs an ISO-8601 duration with an optional human description.
type LomDuration struct {
	Duration    time.Duration
	Description *SingleLangString
}

// Identifier is a LOM catalog/entry identifier pair.
type Identifier struct {
	Catalog string
	Entry   string
}

// LomDate is a LOM date with an optional free-text description, kept as a
// raw string since LOM dates are frequently partial ("2004", "2004-05").
type LomDate struct {
	DateTime    string
	Description *SingleLangString
}

// Contribute is a single lifecycle or meta-metadata contribution.
type Contribute struct {
	Role   SourceValuePair[string]
	Entity []string // vCard strings, kept opaque
	Date   *LomDate
}

// Requirement is a LOM technical.requirement entry (OR'd orComposite set of
// type/name/minVersion/maxVersion triples); kept as opaque name/value pairs
// since authoring tools vary wildly in which sub-elements they populate.
type Requirement struct {
	Type       string
	Name       string
	MinVersion string
	MaxVersion string
}

type General struct {
	Identifier  []Identifier
	Title       SingleLangString
	Language    []string
	Description UnboundLangString
	Keyword     UnboundLangString
	Coverage    UnboundLangString
	Structure   SourceValuePair[Structure]
	AggregationLevel SourceValuePair[string]
}

type Lifecycle struct {
	Version    SingleLangString
	Status     SourceValuePair[LifecycleStatus]
	Contribute []Contribute
}

type MetaMetadata struct {
	Identifier     []Identifier
	Contribute     []Contribute
	MetadataSchema []string
	Language       string
}

type Technical struct {
	Format                    []string
	Size                      int64
	Location                  []string
	Requirement               []Requirement
	InstallationRemarks       SingleLangString
	OtherPlatformRequirements SingleLangString
	Duration                  LomDuration
}

type Educational struct {
	InteractivityType    SourceValuePair[InteractivityType]
	LearningResourceType []SourceValuePair[LearningResourceType]
	InteractivityLevel   SourceValuePair[Ordinal5]
	SemanticDensity      SourceValuePair[Ordinal5]
	IntendedEndUserRole  []SourceValuePair[IntendedEndUserRole]
	Context              []SourceValuePair[LearningContext]
	TypicalAgeRange      UnboundLangString
	Difficulty           SourceValuePair[Difficulty]
	TypicalLearningTime  LomDuration
	Description          UnboundLangString
	Language             []string
}

type Rights struct {
	Cost                          YesNo
	CopyrightAndOtherRestrictions YesNo
	Description                   SingleLangString
}

type RelationResource struct {
	Identifier  []Identifier
	Description UnboundLangString
}

type Relation struct {
	Kind     SourceValuePair[RelationKind]
	Resource RelationResource
}

type Annotation struct {
	Entity      string
	Date        *LomDate
	Description SingleLangString
}

type Taxon struct {
	ID    string
	Entry UnboundLangString
}

type TaxonPath struct {
	Source UnboundLangString
	Taxon  []Taxon
}

type Classification struct {
	Purpose     SourceValuePair[ClassificationPurpose]
	TaxonPath   []TaxonPath
	Description UnboundLangString
	Keyword     UnboundLangString
}

// LOM is the IEEE Learning Object Metadata record: nine
// top-level groups, three of them repeating.
type LOM struct {
	General        General
	Lifecycle      Lifecycle
	MetaMetadata   MetaMetadata
	Technical      Technical
	Educational    Educational
	Rights         Rights
	Relations      []Relation
	Annotations    []Annotation
	Classifications []Classification
}

// NormalizedKeywords returns the stemmed, de-duplicated set of every
// classification keyword and the top-level general.keyword group, used by
// the projection layer to compare vendor taxonomies that differ only by
// inflection ("assessment" vs "assessments").
func (l *LOM) NormalizedKeywords() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(raw string) {
		stem := StemKeyword(raw)
		if stem == "" || seen[stem] {
			return
		}
		seen[stem] = true
		out = append(out, stem)
	}
	for _, ls := range l.General.Keyword {
		add(ls.Value)
	}
	for _, c := range l.Classifications {
		for _, ls := range c.Keyword {
			add(ls.Value)
		}
	}
	return out
}
