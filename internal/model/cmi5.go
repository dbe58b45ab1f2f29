package model

// CMI5AssignableUnit is one <au> entry in a cmi5 course structure
//.
type CMI5AssignableUnit struct {
	ActivityID    string
	Title         UnboundLangString
	Description   UnboundLangString
	LaunchURL     string
	LaunchMethod  string
	MoveOn        string
	MasteryScore  *float64
	HasMasteryScore bool
}

// CMI5Course is the top-level <course> block.
type CMI5Course struct {
	ID          string
	Title       UnboundLangString
	Description UnboundLangString
}

// CMI5Manifest is the parsed cmi5.xml document. cmi5
// packages are always xAPI-enabled.
type CMI5Manifest struct {
	Course          CMI5Course
	AssignableUnits []CMI5AssignableUnit
}
