// Package inidecode decodes the AICC course-description file (.crs),
// an INI document with bracketed section headers and case-insensitive
// keys. It wraps
// gopkg.in/ini.v1, the INI library used across this codebase's reference
// corpus, rather than hand-rolling a second line-oriented parser next to
// the XML tree decoder in xmlutil.
package inidecode

import (
	"io"
	"strings"

	"gopkg.in/ini.v1"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
)

// Decode reads an AICC INI-format document and returns it as a
// model.Course: one CaseInsensitiveMap per section, keyed by the
// lowercased section name. sourcePath is used only for error reporting.
func Decode(r io.Reader, sourcePath string) (*model.Course, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, elmerrors.NewIoError("read", sourcePath, err)
	}
	cfg, err := ini.LoadSources(ini.LoadOptions{
		Insensitive:         true,
		InsensitiveSections: true,
		AllowBooleanKeys:    true,
	}, data)
	if err != nil {
		return nil, elmerrors.NewManifestParseError(sourcePath, err)
	}

	// ini.v1 reports a bare key (no delimiter) as "true"; note them per
	// section so they are recorded with an empty value instead.
	bare := make(map[string]bool)
	current := ini.DefaultSection
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			current = strings.TrimSpace(line[1 : len(line)-1])
		} else if line != "" && !strings.ContainsAny(line, "=:;#") {
			bare[normalizeSectionName(current)+"\x00"+normalizeSectionName(line)] = true
		}
	}

	course := &model.Course{Sections: make(map[string]model.CaseInsensitiveMap)}
	for _, section := range cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection && len(section.Keys()) == 0 {
			continue
		}
		raw := make(map[string]string, len(section.Keys()))
		for _, key := range section.Keys() {
			value := key.Value()
			if bare[normalizeSectionName(name)+"\x00"+normalizeSectionName(key.Name())] {
				value = ""
			}
			raw[key.Name()] = value
		}
		course.Sections[normalizeSectionName(name)] = model.NewCaseInsensitiveMap(raw)
	}
	return course, nil
}

func normalizeSectionName(name string) string {
	out := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
