package model

// TinCanActivity is one <activity> entry in a tincan.xml document.
type TinCanActivity struct {
	ID          string
	Type        string
	Name        UnboundLangString
	Description UnboundLangString
	LaunchURL   string
}

// IsCourse reports whether the activity's type identifies it as the
// course-level activity.
func (a TinCanActivity) IsCourse() bool {
	return a.Type == "http://adlnet.gov/expapi/activities/course" || a.Type == "course"
}

// TinCanManifest is the parsed tincan.xml document.
type TinCanManifest struct {
	Activities []TinCanActivity
}

// ChosenActivity returns the first activity whose type is `course`, or the
// first activity if none declares that type.
func (m *TinCanManifest) ChosenActivity() (TinCanActivity, bool) {
	if m == nil || len(m.Activities) == 0 {
		return TinCanActivity{}, false
	}
	for _, a := range m.Activities {
		if a.IsCourse() {
			return a, true
		}
	}
	return m.Activities[0], true
}
