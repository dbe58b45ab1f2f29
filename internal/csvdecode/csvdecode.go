// Package csvdecode decodes the AICC .des/.au/.cst/.pre/.ort tables, which
// are plain comma-delimited text with a header row. No third-party CSV library appears anywhere in this
// codebase's reference corpus, so this wraps the standard library's
// encoding/csv rather than inventing a dependency with no grounding
// (tracked in DESIGN.md).
package csvdecode

import (
	"encoding/csv"
	"io"
	"strings"

	elmerrors "github.com/standardbeagle/elmparse/internal/errors"
	"github.com/standardbeagle/elmparse/internal/model"
)

// Rows decodes a header-led CSV table into one CaseInsensitiveMap per data
// row, keyed by the header's column names. AICC tables vary in column
// count/order across authoring tools, so rows are always looked up by
// name, never by position, once decoded.
func Rows(r io.Reader, sourcePath string) ([]model.CaseInsensitiveMap, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // AICC exports are not always rectangular
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, elmerrors.NewManifestParseError(sourcePath, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	rows := make([]model.CaseInsensitiveMap, 0, len(records)-1)
	for _, record := range records[1:] {
		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				raw[strings.TrimSpace(col)] = strings.TrimSpace(record[i])
			} else {
				raw[strings.TrimSpace(col)] = ""
			}
		}
		rows = append(rows, model.NewCaseInsensitiveMap(raw))
	}
	return rows, nil
}
