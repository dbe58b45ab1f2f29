package model

// File is a single physical file referenced by a Resource. Exists is the one
// field in this entire model that is intentionally mutated after
// construction: the parser fills it in once, via a batched
// existence probe, after the tree has otherwise been fully built.
type File struct {
	Href   string
	Exists bool
}

// Dependency is a resource-to-resource reference (IMS CP <dependency>).
type Dependency struct {
	IdentifierRef string
}

// Resource is an IMS Content Packaging resource.
type Resource struct {
	Identifier   string
	Type         string
	Href         string
	HasHref      bool
	ScormType    ScormType
	HasScormType bool
	Files        []File
	Dependencies []Dependency
	Metadata     *LOM
}

// Item is a node in the organization tree. Children recurse
// to unbounded depth; resolution to a Resource is by identifier lookup
//, never by pointer, so trees can be freely copied or
// serialized without aliasing concerns.
type Item struct {
	Identifier    string
	Title         string
	IdentifierRef string
	HasIdentifierRef bool
	Items         []*Item
	Metadata      *LOM
	Sequencing    *Sequencing // SCORM 2004 only
	ADL           *ADLExtensions
}

// Leaf returns true if the item has no children, i.e. it is expected to
// carry an identifierref to a launchable resource.
func (it *Item) Leaf() bool {
	return len(it.Items) == 0
}

// Walk visits the item and every descendant in depth-first order.
func (it *Item) Walk(visit func(*Item)) {
	if it == nil {
		return
	}
	visit(it)
	for _, child := range it.Items {
		child.Walk(visit)
	}
}

// Organization is one <organization> element: an identifier, a title, and an
// ordered item tree.
type Organization struct {
	Identifier string
	Title      string
	Items      []*Item
}

// Organizations is the <organizations> container.
type Organizations struct {
	DefaultOrganization string
	Organizations       []*Organization
}

// Default returns the organization named by DefaultOrganization, falling
// back to the single organization present when the name does not resolve
// or to the first organization when there
// are several and none match.
func (o *Organizations) Default() *Organization {
	if o == nil || len(o.Organizations) == 0 {
		return nil
	}
	for _, org := range o.Organizations {
		if org.Identifier == o.DefaultOrganization {
			return org
		}
	}
	return o.Organizations[0]
}

// ADLData is a single ADL sequencing data-map entry attached to an item.
type ADLData struct {
	TargetID        string
	ReadSharedData  bool
	WriteSharedData bool
}

// ADLObjective is an ADL <adlcp:completionThreshold>/objectives extension
// entry attached to an item.
type ADLObjective struct {
	ObjectiveID string
	Primary     bool
}

// ADLExtensions holds the ADL-namespace additions to an Item: shared data
// map, completion threshold, and objective bindings.
type ADLExtensions struct {
	DataMap             []ADLData
	CompletionThreshold *float64
	Objectives          []ADLObjective
}

// ResourceIndex resolves identifierref pointers to Resources without the
// tree holding a live pointer itself.
type ResourceIndex map[string]*Resource

// BuildResourceIndex builds the by_identifier lookup used to resolve an
// Item.IdentifierRef to its Resource.
func BuildResourceIndex(resources []*Resource) ResourceIndex {
	idx := make(ResourceIndex, len(resources))
	for _, r := range resources {
		idx[r.Identifier] = r
	}
	return idx
}

// Resolve looks up the resource an item points to, if any.
func (idx ResourceIndex) Resolve(item *Item) (*Resource, bool) {
	if item == nil || !item.HasIdentifierRef {
		return nil, false
	}
	r, ok := idx[item.IdentifierRef]
	return r, ok
}

// FirstLeafLaunchHref walks the organization's tree in document order and
// returns the href of the first resource resolvable from a leaf item,
// which is the SCORM 1.2/2004 launch-URL derivation rule.
func FirstLeafLaunchHref(org *Organization, resources ResourceIndex) (string, bool) {
	if org == nil {
		return "", false
	}
	var found string
	var ok bool
	var visit func(items []*Item)
	visit = func(items []*Item) {
		for _, it := range items {
			if ok {
				return
			}
			if it.Leaf() {
				if res, resOK := resources.Resolve(it); resOK && res.HasHref && res.Href != "" {
					found, ok = res.Href, true
					return
				}
				continue
			}
			visit(it.Items)
			if ok {
				return
			}
		}
	}
	visit(org.Items)
	return found, ok
}
