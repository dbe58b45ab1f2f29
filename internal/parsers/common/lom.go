// Package common holds the helpers shared by every format parser: LOM
// metadata decoding, IMS Content Packaging tree assembly, IMS Simple
// Sequencing decoding, external metadata resolution, and the batched
// resource-existence bookkeeping the SCORM parsers perform.
package common

import (
	"strconv"
	"strings"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

// DecodeLOM walks a <lom> (or <metadata><lom>) Node and populates a
// model.LOM. Unknown or absent sub-elements are simply left at their zero
// value; LOM documents in the wild rarely populate more than a handful of
// the nine groups. Every numeric, yes/no and duration coercion that can't
// parse its raw value appends a warning to warnings rather than failing
// the whole decode, the same leniency model.ParseYesNo and the
// xmlutil.ParseXxxLenient family hand back to their callers. Vocabulary
// enums with an Unknown variant (structure, status, interactivity type,
// difficulty, ...) map an unrecognized value to Unknown without a warning.
func DecodeLOM(n *xmlutil.Node, warnings *elmerrors.WarningList) *model.LOM {
	if n == nil {
		return nil
	}
	lom := &model.LOM{}
	if general, warn := n.ChildOrAlias("lom.general", "general"); general != nil {
		addWarn(warnings, warn)
		decodeGeneral(general, &lom.General)
	}
	if lifecycle, warn := n.ChildOrAlias("lom.lifecycle", "lifecycle", "lifeCycle"); lifecycle != nil {
		addWarn(warnings, warn)
		decodeLifecycle(lifecycle, &lom.Lifecycle)
	}
	if meta, warn := n.ChildOrAlias("lom.metaMetadata", "metametadata", "metaMetadata", "meta-metadata"); meta != nil {
		addWarn(warnings, warn)
		decodeMetaMetadata(meta, &lom.MetaMetadata)
	}
	if tech, warn := n.ChildOrAlias("lom.technical", "technical"); tech != nil {
		addWarn(warnings, warn)
		decodeTechnical(tech, &lom.Technical, warnings)
	}
	if edu, warn := n.ChildOrAlias("lom.educational", "educational"); edu != nil {
		addWarn(warnings, warn)
		decodeEducational(edu, &lom.Educational, warnings)
	}
	if rights, warn := n.ChildOrAlias("lom.rights", "rights"); rights != nil {
		addWarn(warnings, warn)
		decodeRights(rights, &lom.Rights, warnings)
	}
	for _, rel := range n.ChildrenNamed("relation") {
		lom.Relations = append(lom.Relations, decodeRelation(rel))
	}
	for _, ann := range n.ChildrenNamed("annotation") {
		lom.Annotations = append(lom.Annotations, decodeAnnotation(ann))
	}
	for _, cls := range n.ChildrenNamed("classification") {
		lom.Classifications = append(lom.Classifications, decodeClassification(cls))
	}
	return lom
}

func text(n *xmlutil.Node) string {
	if n == nil {
		return ""
	}
	return n.Text
}

func langString(n *xmlutil.Node) model.SingleLangString {
	if n == nil {
		return model.SingleLangString{}
	}
	// <string language="en">value</string> or inline string on the node.
	if child := n.Child("string"); child != nil {
		lang, _ := child.Attr("language")
		return model.SingleLangString{Language: lang, Value: child.Text}
	}
	lang, _ := n.Attr("language")
	return model.SingleLangString{Language: lang, Value: n.Text}
}

func unboundLangString(n *xmlutil.Node) model.UnboundLangString {
	if n == nil {
		return nil
	}
	var out model.UnboundLangString
	entries := n.ChildrenNamed("string")
	if len(entries) == 0 {
		if n.Text != "" {
			lang, _ := n.Attr("language")
			out = append(out, model.LangString{Language: lang, Value: n.Text})
		}
		return out
	}
	for _, s := range entries {
		lang, _ := s.Attr("language")
		out = append(out, model.LangString{Language: lang, Value: s.Text})
	}
	return out
}

func sourceValue(n *xmlutil.Node) (source, value string) {
	if n == nil {
		return "", ""
	}
	if src := n.Child("source"); src != nil {
		source = text(src)
	}
	if val := n.Child("value"); val != nil {
		value = text(val)
	}
	return source, value
}

func decodeIdentifiers(n *xmlutil.Node) []model.Identifier {
	var out []model.Identifier
	for _, id := range n.ChildrenNamed("identifier") {
		out = append(out, model.Identifier{
			Catalog: text(id.Child("catalog")),
			Entry:   text(id.Child("entry")),
		})
	}
	return out
}

func decodeGeneral(n *xmlutil.Node, g *model.General) {
	g.Identifier = decodeIdentifiers(n)
	if title := n.Child("title"); title != nil {
		g.Title = langString(title)
	}
	for _, lang := range n.ChildrenNamed("language") {
		g.Language = append(g.Language, text(lang))
	}
	if desc := n.Child("description"); desc != nil {
		g.Description = unboundLangString(desc)
	}
	for _, kw := range n.ChildrenNamed("keyword") {
		g.Keyword = append(g.Keyword, unboundLangString(kw)...)
	}
	for _, cov := range n.ChildrenNamed("coverage") {
		g.Coverage = append(g.Coverage, unboundLangString(cov)...)
	}
	if structure := n.Child("structure"); structure != nil {
		src, val := sourceValue(structure)
		g.Structure = model.SourceValuePair[model.Structure]{Source: src, Value: model.ParseStructure(val)}
	}
	if agg := n.Child("aggregationlevel"); agg != nil {
		src, val := sourceValue(agg)
		g.AggregationLevel = model.SourceValuePair[string]{Source: src, Value: val}
	}
}

func decodeContribute(n *xmlutil.Node) model.Contribute {
	c := model.Contribute{}
	if role := n.Child("role"); role != nil {
		src, val := sourceValue(role)
		c.Role = model.SourceValuePair[string]{Source: src, Value: val}
	}
	for _, entity := range n.ChildrenNamed("entity") {
		c.Entity = append(c.Entity, text(entity))
	}
	if date := n.Child("date"); date != nil {
		d := &model.LomDate{DateTime: text(date.Child("datetime"))}
		if desc := date.Child("description"); desc != nil {
			ls := langString(desc)
			d.Description = &ls
		}
		c.Date = d
	}
	return c
}

func decodeLifecycle(n *xmlutil.Node, l *model.Lifecycle) {
	if version := n.Child("version"); version != nil {
		l.Version = langString(version)
	}
	if status := n.Child("status"); status != nil {
		src, val := sourceValue(status)
		l.Status = model.SourceValuePair[model.LifecycleStatus]{Source: src, Value: model.ParseLifecycleStatus(val)}
	}
	for _, contrib := range n.ChildrenNamed("contribute") {
		l.Contribute = append(l.Contribute, decodeContribute(contrib))
	}
}

func decodeMetaMetadata(n *xmlutil.Node, m *model.MetaMetadata) {
	m.Identifier = decodeIdentifiers(n)
	for _, contrib := range n.ChildrenNamed("contribute") {
		m.Contribute = append(m.Contribute, decodeContribute(contrib))
	}
	for _, schema := range n.ChildrenNamed("metadataschema") {
		m.MetadataSchema = append(m.MetadataSchema, text(schema))
	}
	m.Language = text(n.Child("language"))
}

func decodeDuration(n *xmlutil.Node, fieldPath string, warnings *elmerrors.WarningList) model.LomDuration {
	d := model.LomDuration{}
	if n == nil {
		return d
	}
	raw := text(n.Child("duration"))
	parsed, warn := xmlutil.ParseISO8601Duration(fieldPath, raw)
	if warn != nil {
		warnings.Add(warn.FieldPath, warn.Message)
	}
	d.Duration = parsed
	if desc := n.Child("description"); desc != nil {
		ls := langString(desc)
		d.Description = &ls
	}
	return d
}

func decodeTechnical(n *xmlutil.Node, t *model.Technical, warnings *elmerrors.WarningList) {
	for _, format := range n.ChildrenNamed("format") {
		t.Format = append(t.Format, text(format))
	}
	if size := n.Child("size"); size != nil {
		v, warn := xmlutil.ParseIntLenient("technical.size", size.Text, 0)
		if warn != nil {
			warnings.Add(warn.FieldPath, warn.Message)
		}
		t.Size = int64(v)
	}
	for _, loc := range n.ChildrenNamed("location") {
		t.Location = append(t.Location, text(loc))
	}
	for _, req := range n.ChildrenNamed("requirement") {
		t.Requirement = append(t.Requirement, decodeRequirement(req))
	}
	if remarks := n.Child("installationremarks"); remarks != nil {
		t.InstallationRemarks = langString(remarks)
	}
	if other := n.Child("otherplatformrequirements"); other != nil {
		t.OtherPlatformRequirements = langString(other)
	}
	t.Duration = decodeDuration(n.Child("duration"), "technical.duration", warnings)
}

func decodeRequirement(n *xmlutil.Node) model.Requirement {
	r := model.Requirement{}
	if oc := n.Child("orcomposite"); oc != nil {
		if t := oc.Child("type"); t != nil {
			_, r.Type = sourceValue(t)
		}
		if name := oc.Child("name"); name != nil {
			_, r.Name = sourceValue(name)
		}
		r.MinVersion = text(oc.Child("minimumversion"))
		r.MaxVersion = text(oc.Child("maximumversion"))
	}
	return r
}

func decodeEducational(n *xmlutil.Node, e *model.Educational, warnings *elmerrors.WarningList) {
	if it := n.Child("interactivitytype"); it != nil {
		src, val := sourceValue(it)
		e.InteractivityType = model.SourceValuePair[model.InteractivityType]{Source: src, Value: model.ParseInteractivityType(val)}
	}
	for _, lrt := range n.ChildrenNamed("learningresourcetype") {
		src, val := sourceValue(lrt)
		e.LearningResourceType = append(e.LearningResourceType, model.SourceValuePair[model.LearningResourceType]{Source: src, Value: model.ParseLearningResourceType(val)})
	}
	if il := n.Child("interactivitylevel"); il != nil {
		src, val := sourceValue(il)
		e.InteractivityLevel = model.SourceValuePair[model.Ordinal5]{Source: src, Value: model.ParseOrdinal5(val)}
	}
	if sd := n.Child("semanticdensity"); sd != nil {
		src, val := sourceValue(sd)
		e.SemanticDensity = model.SourceValuePair[model.Ordinal5]{Source: src, Value: model.ParseOrdinal5(val)}
	}
	for _, role := range n.ChildrenNamed("intendedenduserrole") {
		src, val := sourceValue(role)
		e.IntendedEndUserRole = append(e.IntendedEndUserRole, model.SourceValuePair[model.IntendedEndUserRole]{Source: src, Value: model.ParseIntendedEndUserRole(val)})
	}
	for _, ctx := range n.ChildrenNamed("context") {
		src, val := sourceValue(ctx)
		e.Context = append(e.Context, model.SourceValuePair[model.LearningContext]{Source: src, Value: model.ParseLearningContext(val)})
	}
	for _, age := range n.ChildrenNamed("typicalagerange") {
		e.TypicalAgeRange = append(e.TypicalAgeRange, unboundLangString(age)...)
	}
	if diff := n.Child("difficulty"); diff != nil {
		src, val := sourceValue(diff)
		e.Difficulty = model.SourceValuePair[model.Difficulty]{Source: src, Value: model.ParseDifficulty(val)}
	}
	e.TypicalLearningTime = decodeDuration(n.Child("typicallearningtime"), "educational.typicalLearningTime", warnings)
	if desc := n.Child("description"); desc != nil {
		e.Description = unboundLangString(desc)
	}
	for _, lang := range n.ChildrenNamed("language") {
		e.Language = append(e.Language, text(lang))
	}
}

func decodeRights(n *xmlutil.Node, r *model.Rights, warnings *elmerrors.WarningList) {
	if cost := n.Child("cost"); cost != nil {
		_, val := sourceValue(cost)
		yn, ok := model.ParseYesNo(val)
		if !ok {
			warnings.Add("rights.cost", "unrecognized yes/no value "+strconv.Quote(val))
		}
		r.Cost = yn
	}
	if copyr := n.Child("copyrightandotherrestrictions"); copyr != nil {
		_, val := sourceValue(copyr)
		yn, ok := model.ParseYesNo(val)
		if !ok {
			warnings.Add("rights.copyrightAndOtherRestrictions", "unrecognized yes/no value "+strconv.Quote(val))
		}
		r.CopyrightAndOtherRestrictions = yn
	}
	if desc := n.Child("description"); desc != nil {
		r.Description = langString(desc)
	}
}

func decodeRelation(n *xmlutil.Node) model.Relation {
	rel := model.Relation{}
	if kind := n.Child("kind"); kind != nil {
		src, val := sourceValue(kind)
		rel.Kind = model.SourceValuePair[model.RelationKind]{Source: src, Value: model.ParseRelationKind(val)}
	}
	if res := n.Child("resource"); res != nil {
		rel.Resource = model.RelationResource{
			Identifier:  decodeIdentifiers(res),
			Description: unboundLangString(res.Child("description")),
		}
	}
	return rel
}

func decodeAnnotation(n *xmlutil.Node) model.Annotation {
	ann := model.Annotation{Entity: text(n.Child("entity"))}
	if date := n.Child("date"); date != nil {
		d := &model.LomDate{DateTime: text(date.Child("datetime"))}
		ann.Date = d
	}
	if desc := n.Child("description"); desc != nil {
		ann.Description = langString(desc)
	}
	return ann
}

func decodeClassification(n *xmlutil.Node) model.Classification {
	c := model.Classification{}
	if purpose := n.Child("purpose"); purpose != nil {
		src, val := sourceValue(purpose)
		c.Purpose = model.SourceValuePair[model.ClassificationPurpose]{Source: src, Value: model.ParseClassificationPurpose(val)}
	}
	for _, tp := range n.ChildrenNamed("taxonpath") {
		path := model.TaxonPath{Source: unboundLangString(tp.Child("source"))}
		for _, taxon := range tp.ChildrenNamed("taxon") {
			path.Taxon = append(path.Taxon, model.Taxon{
				ID:    text(taxon.Child("id")),
				Entry: unboundLangString(taxon.Child("entry")),
			})
		}
		c.TaxonPath = append(c.TaxonPath, path)
	}
	if desc := n.Child("description"); desc != nil {
		c.Description = unboundLangString(desc)
	}
	for _, kw := range n.ChildrenNamed("keyword") {
		c.Keyword = append(c.Keyword, unboundLangString(kw)...)
	}
	return c
}

// MissingField is a convenience for the "verify required fields" obligation
// common to every parser: it builds the MissingRequiredField
// error with a consistently-formatted field path.
func MissingField(path, field string) error {
	return elmerrors.NewMissingRequiredField(field, path)
}

// JoinFieldPath builds a dotted field path for nested warnings/errors, e.g.
// JoinFieldPath("organizations.organization[0]", "title").
func JoinFieldPath(parts ...string) string {
	return strings.Join(parts, ".")
}

// addWarn records warn on warnings when non-nil; a no-op for the common
// case of an exact-match lookup that produced no warning.
func addWarn(warnings *elmerrors.WarningList, warn *elmerrors.Warning) {
	if warn != nil {
		warnings.Add(warn.FieldPath, warn.Message)
	}
}

// EnumWarnings returns the subset of warnings that recovered an
// unrecognized enum value (yes/no, scormtype, ...), as opposed to a
// malformed numeric/bool/duration literal. Used to gate strict enum
// validation: a non-empty result means a lenient parse accepted something
// strict mode must reject.
func EnumWarnings(warnings *elmerrors.WarningList) []elmerrors.Warning {
	if warnings == nil {
		return nil
	}
	var out []elmerrors.Warning
	for _, w := range warnings.Warnings {
		if strings.Contains(w.Message, "unrecognized") {
			out = append(out, w)
		}
	}
	return out
}
