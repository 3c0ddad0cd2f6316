// Package customer defines the canonical customer record model and the
// normalization boundary that turns raw rows from either source into it.
//
// Both the Excel reader and the QuickBooks gateway produce untyped raw rows.
// Normalize coerces each row's identifier to a string, trims the display
// name, and indexes the records by id into a Set. All data-quality policy
// lives here: a row without a usable id fails with ErrMissingID, and two
// rows sharing an id within one source fail with ErrDuplicateID. The
// reconcile engine downstream never sees invalid input.
//
// Name equality is defined at this boundary as well: names are trimmed of
// surrounding whitespace during normalization and compared byte-for-byte
// afterwards (no case folding).
//
// # Usage
//
//	set, err := customer.Normalize(rows, customer.SourceExcel)
//	if err != nil {
//	    // ErrMissingID or ErrDuplicateID, wrapped with row context
//	}
package customer
