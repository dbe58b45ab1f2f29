// Package aicc implements the AICC format parser: an INI
// course descriptor plus three-to-five sibling CSV tables, discovered by
// file extension rather than by a single manifest name.
package aicc

import (
	"strconv"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/csvdecode"
	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/inidecode"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/parsers/common"
	"github.com/standardbeagle/elmparse/internal/projection"
)

// courseTitleKeys are the recognized spellings of the course title key
// within [Course_Data] across AICC authoring tools.
var courseTitleKeys = []string{"course_title", "coursetitle", "title"}

// courseTitleAliasThreshold is the minimum Jaro-Winkler similarity a
// [Course_Data] key must clear against "course_title" before
// findCourseTitle accepts it as a fuzzy match, mirroring
// xmlutil.ChildOrAlias's tolerance for misspelled element names.
const courseTitleAliasThreshold = 0.85

// findCourseTitle looks up the course title under any of courseTitleKeys,
// falling back to a Jaro-Winkler fuzzy match against every key actually
// present in courseData when none of the known spellings are present —
// some AICC authoring tools emit idiosyncratic key spellings.
func findCourseTitle(courseData model.CaseInsensitiveMap, warnings *elmerrors.WarningList) string {
	for _, key := range courseTitleKeys {
		if v, ok := courseData.Get(key); ok && v != "" {
			return v
		}
	}
	if len(courseData) == 0 {
		return ""
	}
	keys := make([]string, 0, len(courseData))
	for k := range courseData {
		keys = append(keys, k)
	}
	match, err := edlib.FuzzySearchThreshold("course_title", keys, courseTitleAliasThreshold, edlib.JaroWinkler)
	if err != nil || match == "" {
		return ""
	}
	v, ok := courseData.Get(match)
	if !ok || v == "" {
		return ""
	}
	warnings.Add("course_data.course_title", "key "+strconv.Quote("course_title")+" not found; used similarly-named key "+strconv.Quote(match))
	return v
}

// filesByExt returns every path under acc's root whose extension matches
// ext (e.g. ".crs"), case-insensitively, by globbing for both the lower-
// and upper-case spelling authoring tools are known to emit.
func filesByExt(acc access.PackageAccess, ext string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range []string{"**/*" + strings.ToLower(ext), "**/*" + strings.ToUpper(ext)} {
		matches, err := acc.ListGlob(pattern)
		if err != nil {
			continue
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

func firstFileByExt(acc access.PackageAccess, ext string) (string, bool) {
	matches := filesByExt(acc, ext)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0], true
}

// ParseManifest discovers and decodes the AICC course's sibling files into
// a *model.AICCManifest.
func ParseManifest(acc access.PackageAccess) (*model.AICCManifest, *elmerrors.WarningList, error) {
	warnings := elmerrors.NewWarningList()

	crsPath, ok := firstFileByExt(acc, ".crs")
	if !ok {
		return nil, warnings, elmerrors.NewMissingManifest("*.crs", acc.RootPath())
	}

	m := &model.AICCManifest{}

	if course, err := decodeCourse(acc, crsPath); err != nil {
		return nil, warnings, err
	} else {
		m.Course = *course
	}

	desPath, hasDes := firstFileByExt(acc, ".des")
	auPath, hasAu := firstFileByExt(acc, ".au")
	cstPath, hasCst := firstFileByExt(acc, ".cst")

	if !hasDes || !hasAu || !hasCst {
		warnings.Add(acc.RootPath(), "AICC package classified by .crs alone; one or more of .des/.au/.cst is missing")
	}

	if hasDes {
		rows, err := decodeCSV(acc, desPath)
		if err != nil {
			return nil, warnings, err
		}
		for _, row := range rows {
			systemID, _ := row.Get("system_id")
			title, _ := row.Get("title")
			desc, _ := row.Get("description")
			m.Descriptors = append(m.Descriptors, model.Descriptor{SystemID: systemID, Title: title, Description: desc})
		}
	}

	if hasAu {
		rows, err := decodeCSV(acc, auPath)
		if err != nil {
			return nil, warnings, err
		}
		for _, row := range rows {
			au := model.AssignableUnit{}
			au.SystemID, _ = row.Get("system_id")
			au.Type, _ = row.Get("type")
			if v, ok := row.Get("file_name"); ok {
				au.WebLaunch = v
			} else if v, ok := row.Get("web_launch"); ok {
				au.WebLaunch = v
			}
			au.MasteryScore, _ = row.Get("mastery_score")
			au.MaxTimeAllowed, _ = row.Get("max_time_allowed")
			au.TimeLimitAction, _ = row.Get("time_limit_action")
			au.CoreVendor, _ = row.Get("core_vendor")
			m.AssignableUnits = append(m.AssignableUnits, au)
		}
	}

	if hasCst {
		rows, err := decodeCSV(acc, cstPath)
		if err != nil {
			return nil, warnings, err
		}
		for _, row := range rows {
			block, _ := row.Get("block")
			member, _ := row.Get("member")
			m.CourseStructure = append(m.CourseStructure, model.CourseStructureRow{Block: block, Member: member})
		}
	}

	for _, preFile := range filesByExt(acc, ".pre") {
		rows, err := decodeCSV(acc, preFile)
		if err != nil {
			return nil, warnings, err
		}
		m.Prerequisites = append(m.Prerequisites, removeBlankRows(rows)...)
	}
	for _, ortFile := range filesByExt(acc, ".ort") {
		rows, err := decodeCSV(acc, ortFile)
		if err != nil {
			return nil, warnings, err
		}
		m.ObjectivesRelation = append(m.ObjectivesRelation, removeBlankRows(rows)...)
	}

	courseData := m.Course.Section("course_data")
	m.Title = findCourseTitle(courseData, warnings)
	if v, ok := courseData.Get("course_id"); ok {
		m.Identifier = v
	}

	if len(m.AssignableUnits) > 0 {
		m.LaunchURL = m.AssignableUnits[0].WebLaunch
	}

	if m.Title == "" {
		return nil, warnings, common.MissingField(crsPath, "course_data.course_title")
	}
	if m.LaunchURL == "" {
		return nil, warnings, common.MissingField(crsPath, "assignable_unit[0].file_name")
	}

	return m, warnings, nil
}

func decodeCourse(acc access.PackageAccess, path string) (*model.Course, error) {
	rc, err := acc.Read(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return inidecode.Decode(rc, path)
}

func decodeCSV(acc access.PackageAccess, path string) ([]model.CaseInsensitiveMap, error) {
	rc, err := acc.Read(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return csvdecode.Rows(rc, path)
}

func removeBlankRows(rows []model.CaseInsensitiveMap) []model.CaseInsensitiveMap {
	var out []model.CaseInsensitiveMap
	for _, row := range rows {
		blank := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if !blank {
			out = append(out, row)
		}
	}
	return out
}

// Parse runs ParseManifest and projects the result to ModuleMetadata.
func Parse(acc access.PackageAccess) (model.ModuleMetadata, *elmerrors.WarningList, error) {
	manifest, warnings, err := ParseManifest(acc)
	if err != nil {
		return model.ModuleMetadata{}, warnings, err
	}
	return projection.Project(manifest, acc), warnings, nil
}
