// Package detect implements the Type Detector: a fixed-priority, read-light probe over a PackageAccess that
// decides which of the five supported formats a package implements.
package detect

import (
	"strings"

	"github.com/standardbeagle/elmparse/internal/access"
	"github.com/standardbeagle/elmparse/internal/model"
	"github.com/standardbeagle/elmparse/internal/xmlutil"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// scorm2004Namespaces are the XML namespace fragments whose presence in
// imsmanifest.xml's raw bytes promotes a manifest from SCORM 1.2 to SCORM
// 2004. Checked as a cheap substring scan over the
// manifest text rather than a full decode, since detection "does not
// fully read any file" in the structural sense — it inspects the one file
// it must to disambiguate, never the rest of the package.
var scorm2004Namespaces = []string{
	"http://www.adlnet.org/xsd/adlcp_v1p3",
	"adlseq",
	"adlnav",
}

// Detect probes acc in a fixed priority order and returns the matching
// ModuleKind, or a DetectionError naming every probe attempted and what
// was observed at root. Detect always returns a kind or an error; it
// never panics.
func Detect(acc access.PackageAccess) (model.ModuleKind, error) {
	var probes []string
	var observed []string

	root, listErr := acc.List("")
	if listErr == nil {
		observed = root
	}

	probes = append(probes, "imsmanifest.xml")
	if manifestPath, ok := xmlutil.FindFileIgnoreCase(root, "imsmanifest.xml"); ok {
		if isSCORM2004(acc, manifestPath) {
			return model.KindSCORM2004, nil
		}
		return model.KindSCORM12, nil
	}

	probes = append(probes, "cmi5.xml")
	if _, ok := xmlutil.FindFileIgnoreCase(root, "cmi5.xml"); ok {
		return model.KindCMI5, nil
	}

	probes = append(probes, "tincan.xml")
	if _, ok := xmlutil.FindFileIgnoreCase(root, "tincan.xml"); ok {
		return model.KindXAPI, nil
	}

	probes = append(probes, "*.crs")
	for _, pattern := range []string{"**/*.crs", "**/*.CRS"} {
		if matches, err := acc.ListGlob(pattern); err == nil && len(matches) > 0 {
			return model.KindAICC, nil
		}
	}

	return "", elmerrors.NewDetectionError(acc.RootPath(), probes, observed)
}

func isSCORM2004(acc access.PackageAccess, manifestPath string) bool {
	rc, err := acc.Read(manifestPath)
	if err != nil {
		return false
	}
	defer rc.Close()

	var sb strings.Builder
	buf := make([]byte, 8192)
	const scanLimit = 64 * 1024
	for sb.Len() < scanLimit {
		n, readErr := rc.Read(buf)
		if n > 0 {
			sb.Write(buf[:n])
		}
		if readErr != nil {
			break
		}
	}
	text := sb.String()
	for _, ns := range scorm2004Namespaces {
		if strings.Contains(text, ns) {
			return true
		}
	}
	return false
}
