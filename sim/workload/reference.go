package workload

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/inference-sim/pagesim/sim"
)

// ErrMalformedReference is returned when reference text contains a token that
// is not an integer page identifier.
var ErrMalformedReference = errors.New("malformed reference string")

// isReferenceDelimiter reports whether r separates page identifiers.
// Whitespace, commas and semicolons are accepted interchangeably.
func isReferenceDelimiter(r rune) bool {
	return unicode.IsSpace(r) || r == ',' || r == ';'
}

// ParseReferenceString parses a delimiter-agnostic list of integer page IDs,
// e.g. "7 0 1 2", "7,0,1,2" or "7, 0; 1\n2". Empty input yields an empty
// sequence. Any integer, including negative values, is a valid page ID.
func ParseReferenceString(s string) ([]sim.PageID, error) {
	fields := strings.FieldsFunc(s, isReferenceDelimiter)
	refs := make([]sim.PageID, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q) is not an integer", ErrMalformedReference, i+1, f)
		}
		refs = append(refs, sim.PageID(v))
	}
	return refs, nil
}

// LoadReferenceFile reads a reference sequence from a text file. Lines
// starting with '#' are comments; the rest is parsed by ParseReferenceString.
func LoadReferenceFile(path string) ([]sim.PageID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference file: %w", err)
	}
	var b strings.Builder
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	refs, err := ParseReferenceString(b.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return refs, nil
}

// FormatReferences renders refs separated by sep, the inverse of
// ParseReferenceString for any delimiter it accepts.
func FormatReferences(refs []sim.PageID, sep string) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = strconv.FormatInt(int64(r), 10)
	}
	return strings.Join(parts, sep)
}
