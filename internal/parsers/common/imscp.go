package common

import (
	"strconv"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/xmlutil"
)

// DecodeOrganizations walks a SCORM <organizations> element into a
// model.Organizations tree. sequencing is nil for SCORM 1.2, since IMS SS
// is a SCORM 2004-only addition.
func DecodeOrganizations(n *xmlutil.Node, decodeSequencing bool, warnings *elmerrors.WarningList) model.Organizations {
	orgs := model.Organizations{}
	if n == nil {
		return orgs
	}
	orgs.DefaultOrganization, _ = n.Attr("default")
	for _, orgNode := range n.ChildrenNamed("organization") {
		id, _ := orgNode.Attr("identifier")
		org := &model.Organization{Identifier: id}
		if title, warn := orgNode.ChildOrAlias("organizations.organization.title", "title"); title != nil {
			addWarn(warnings, warn)
			org.Title = title.Text
		}
		for _, itemNode := range orgNode.ChildrenNamed("item") {
			org.Items = append(org.Items, decodeItem(itemNode, decodeSequencing, warnings))
		}
		orgs.Organizations = append(orgs.Organizations, org)
	}
	return orgs
}

func decodeItem(n *xmlutil.Node, decodeSequencing bool, warnings *elmerrors.WarningList) *model.Item {
	item := &model.Item{}
	item.Identifier, _ = n.Attr("identifier")
	if ref, ok := n.Attr("identifierref"); ok {
		item.IdentifierRef = ref
		item.HasIdentifierRef = true
	}
	if title, warn := n.ChildOrAlias("organizations.item.title", "title"); title != nil {
		addWarn(warnings, warn)
		item.Title = title.Text
	}
	for _, child := range n.ChildrenNamed("item") {
		item.Items = append(item.Items, decodeItem(child, decodeSequencing, warnings))
	}
	if meta := n.Child("metadata"); meta != nil {
		item.Metadata = DecodeLOM(meta.Child("lom"), warnings)
	}
	if decodeSequencing {
		item.Sequencing = DecodeSequencing(n.Child("sequencing"), warnings)
	}
	item.ADL = decodeADLExtensions(n, warnings)
	return item
}

func decodeADLExtensions(n *xmlutil.Node, warnings *elmerrors.WarningList) *model.ADLExtensions {
	var adl *model.ADLExtensions
	if dataMap := n.Child("datafromlms"); dataMap != nil {
		if adl == nil {
			adl = &model.ADLExtensions{}
		}
		_ = dataMap // ADL data-from-LMS content is delivery-time, not structural; not modeled further here
	}
	if threshold := n.Child("completionthreshold"); threshold != nil {
		if adl == nil {
			adl = &model.ADLExtensions{}
		}
		if raw, ok := threshold.Attr("minprogressmeasure"); ok {
			v, warn := xmlutil.ParseFloatLenient("item.completionThreshold", raw, 1.0)
			if warn != nil {
				warnings.Add(warn.FieldPath, warn.Message)
			}
			adl.CompletionThreshold = &v
		}
	}
	for _, obj := range n.ChildrenNamed("objectives") {
		for _, primaryObj := range obj.ChildrenNamed("objective") {
			if adl == nil {
				adl = &model.ADLExtensions{}
			}
			id, _ := primaryObj.Attr("objectiveid")
			primary, _ := strconv.ParseBool(firstOr(primaryObj, "primary", "false"))
			adl.Objectives = append(adl.Objectives, model.ADLObjective{ObjectiveID: id, Primary: primary})
		}
	}
	return adl
}

func firstOr(n *xmlutil.Node, attr, def string) string {
	if v, ok := n.Attr(attr); ok {
		return v
	}
	return def
}

// DecodeResources walks a SCORM <resources> element into a []*model.Resource.
func DecodeResources(n *xmlutil.Node, warnings *elmerrors.WarningList) []*model.Resource {
	if n == nil {
		return nil
	}
	var out []*model.Resource
	for _, resNode := range n.ChildrenNamed("resource") {
		r := &model.Resource{}
		r.Identifier, _ = resNode.Attr("identifier")
		r.Type, _ = resNode.Attr("type")
		if href, ok := resNode.Attr("href"); ok {
			r.Href = href
			r.HasHref = true
		}
		if st, ok := resNode.Attr("scormtype"); ok {
			parsed, ok2 := model.ParseScormType(st)
			if ok2 {
				r.ScormType = parsed
				r.HasScormType = true
			} else {
				warnings.Add("resource.scormType", "unrecognized scormtype value "+strconv.Quote(st))
			}
		}
		for _, fileNode := range resNode.ChildrenNamed("file") {
			if href, ok := fileNode.Attr("href"); ok {
				r.Files = append(r.Files, model.File{Href: href})
			}
		}
		for _, depNode := range resNode.ChildrenNamed("dependency") {
			if ref, ok := depNode.Attr("identifierref"); ok {
				r.Dependencies = append(r.Dependencies, model.Dependency{IdentifierRef: ref})
			}
		}
		if meta := resNode.Child("metadata"); meta != nil {
			r.Metadata = DecodeLOM(meta.Child("lom"), warnings)
		}
		out = append(out, r)
	}
	return out
}

// PopulateFileExistence runs exists_batch calls across every <file> href
// listed by resources and records the result on each model.File.Exists; a
// resource's own href attribute is not probed. maxBatch bounds how
// many paths go into a single ExistsBatch call; maxBatch <= 0 means one
// call covers every path, regardless of count.
func PopulateFileExistence(acc existsBatcher, resources []*model.Resource, maxBatch int) error {
	var paths []string
	type slot struct {
		resourceIdx int
		fileIdx     int
	}
	var slots []slot
	for ri, r := range resources {
		for fi := range r.Files {
			paths = append(paths, r.Files[fi].Href)
			slots = append(slots, slot{ri, fi})
		}
	}
	if len(paths) == 0 {
		return nil
	}
	if maxBatch <= 0 {
		maxBatch = len(paths)
	}
	for start := 0; start < len(paths); start += maxBatch {
		end := start + maxBatch
		if end > len(paths) {
			end = len(paths)
		}
		results, err := acc.ExistsBatch(paths[start:end])
		if err != nil {
			return err
		}
		for i, s := range slots[start:end] {
			resources[s.resourceIdx].Files[s.fileIdx].Exists = results[i]
		}
	}
	return nil
}

// existsBatcher is the minimal capability PopulateFileExistence needs; it
// is satisfied by access.PackageAccess and by any test stub that only
// implements ExistsBatch.
type existsBatcher interface {
	ExistsBatch(paths []string) ([]bool, error)
}
