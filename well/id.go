// SPDX-License-Identifier: MIT

package well

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxRowPrefix is the largest row accumulator that can take another letter
// without overflowing int.
const maxRowPrefix = (math.MaxInt - alphabet) / alphabet

// DefaultDelimiter separates identifiers in a delimited list such as "A1,B2,C3".
const DefaultDelimiter = ","

// ParseID parses plate notation ("A1", "h12", "AB7") into an ID.
//
// Implementation:
//   - Stage 1: Trim spaces and upper-case the letters.
//   - Stage 2: Consume the leading letters as a bijective base-26 row.
//   - Stage 3: Parse the remainder as a 1-based column number.
//
// Errors:
//   - ErrBadID when letters or digits are missing, the column is 0, or the
//     row or column does not fit in an int.
//
// Complexity: O(len(s)).
func ParseID(s string) (ID, error) {
	t := strings.ToUpper(strings.TrimSpace(s))

	var i, row int
	for i < len(t) && t[i] >= 'A' && t[i] <= 'Z' {
		if row > maxRowPrefix {
			return ID{}, fmt.Errorf("ParseID %q: row overflow: %w", s, ErrBadID)
		}
		row = row*alphabet + int(t[i]-'A') + 1
		i++
	}
	if i == 0 || i == len(t) {
		return ID{}, fmt.Errorf("ParseID %q: %w", s, ErrBadID)
	}

	col, err := strconv.Atoi(t[i:])
	if err != nil || col < 1 || t[i] == '+' || t[i] == '-' {
		return ID{}, fmt.Errorf("ParseID %q: %w", s, ErrBadID)
	}

	return ID{Row: row - 1, Column: col - 1}, nil
}

// ParseIDs parses a delimited identifier list. Empty tokens are skipped, so
// "A1,,B2," yields two IDs. An empty delimiter falls back to DefaultDelimiter.
//
// Errors:
//   - ErrBadID for the first malformed token; no partial result is returned.
func ParseIDs(list, delimiter string) ([]ID, error) {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	tokens := strings.Split(list, delimiter)
	ids := make([]ID, 0, len(tokens))
	for _, tok := range tokens {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		id, err := ParseID(tok)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// JoinIDs renders ids as a delimited list, the inverse of ParseIDs.
func JoinIDs(ids []ID, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteString(delimiter)
		}
		sb.WriteString(id.String())
	}

	return sb.String()
}
