package customer

import (
	"errors"
	"fmt"
	"strings"

	"qb-sync/core/utils"
)

var (
	// ErrMissingID is returned when a source row has no usable identifier.
	ErrMissingID = errors.New("row has no usable record id")

	// ErrDuplicateID is returned when two rows from the same source share a
	// record id after coercion.
	ErrDuplicateID = errors.New("duplicate record id within source")
)

// Normalize converts raw rows from one source into a Set keyed by record id.
//
// Identifiers are coerced to strings (whole numeric values normalize to
// their integer form) and names are trimmed of surrounding whitespace.
// The call fails on the first row without a usable id and on the first
// duplicate id; the returned error wraps ErrMissingID or ErrDuplicateID
// with row and source context.
func Normalize(rows []RawRow, source Source) (Set, error) {
	set := make(Set, len(rows))

	for i, row := range rows {
		id, ok := utils.CellID(row.ID)
		if !ok {
			return nil, fmt.Errorf("%w: source %s, row %d", ErrMissingID, source, i+1)
		}

		if _, exists := set[id]; exists {
			return nil, fmt.Errorf("%w: source %s, id %q", ErrDuplicateID, source, id)
		}

		set[id] = Record{
			ID:     id,
			Name:   strings.TrimSpace(utils.CellString(row.Name)),
			Source: source,
		}
	}

	return set, nil
}
