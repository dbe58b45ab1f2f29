package xmlutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
)

// ParseIntLenient coerces raw to an int, falling back to def and a warning
// on anything that doesn't parse cleanly.
func ParseIntLenient(fieldPath, raw string, def int) (int, *elmerrors.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return def, &elmerrors.Warning{FieldPath: fieldPath, Message: "non-numeric value " + strconv.Quote(raw) + ", using default"}
	}
	return v, nil
}

// ParseFloatLenient is ParseIntLenient's float64 counterpart.
func ParseFloatLenient(fieldPath, raw string, def float64) (float64, *elmerrors.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return def, &elmerrors.Warning{FieldPath: fieldPath, Message: "non-numeric value " + strconv.Quote(raw) + ", using default"}
	}
	return v, nil
}

// boolTrue/boolFalse enumerate the SCORM/AICC/xAPI vocabulary's recognized
// spellings for boolean-like values, case-insensitive.
var boolTrue = map[string]bool{"true": true, "yes": true, "1": true, "on": true}
var boolFalse = map[string]bool{"false": true, "no": true, "0": true, "off": true}

// ParseBoolLenient coerces raw to a bool, falling back to def and a
// warning when raw matches neither vocabulary.
func ParseBoolLenient(fieldPath, raw string, def bool) (bool, *elmerrors.Warning) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if trimmed == "" {
		return def, nil
	}
	if boolTrue[trimmed] {
		return true, nil
	}
	if boolFalse[trimmed] {
		return false, nil
	}
	return def, &elmerrors.Warning{FieldPath: fieldPath, Message: "non-boolean value " + strconv.Quote(raw) + ", using default"}
}

var iso8601DurationPattern = regexp.MustCompile(
	`^P(?:(\d+)Y)?(?:(\d+)M)?(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:([\d.]+)S)?)?$`)

// ParseISO8601Duration parses the PnYnMnDTnHnMnS subset used by LOM
// technical.duration and typicalLearningTime and by IMS SS
// attemptAbsoluteDurationLimit. Years and months are
// approximated as 365 and 30 days respectively, adequate for the
// comparison and display use this value is put to. Anything
// that doesn't match the pattern degrades to a zero duration plus a
// warning rather than a parse failure.
func ParseISO8601Duration(fieldPath, raw string) (time.Duration, *elmerrors.Warning) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	m := iso8601DurationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, &elmerrors.Warning{FieldPath: fieldPath, Message: "unparseable duration " + strconv.Quote(raw)}
	}
	var total time.Duration
	if m[1] != "" {
		n, _ := strconv.Atoi(m[1])
		total += time.Duration(n) * 365 * 24 * time.Hour
	}
	if m[2] != "" {
		n, _ := strconv.Atoi(m[2])
		total += time.Duration(n) * 30 * 24 * time.Hour
	}
	if m[3] != "" {
		n, _ := strconv.Atoi(m[3])
		total += time.Duration(n) * 24 * time.Hour
	}
	if m[4] != "" {
		n, _ := strconv.Atoi(m[4])
		total += time.Duration(n) * time.Hour
	}
	if m[5] != "" {
		n, _ := strconv.Atoi(m[5])
		total += time.Duration(n) * time.Minute
	}
	if m[6] != "" {
		secs, _ := strconv.ParseFloat(m[6], 64)
		total += time.Duration(secs * float64(time.Second))
	}
	return total, nil
}
