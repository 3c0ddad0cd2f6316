package customer

// Source identifies which system a record was read from.
type Source string

const (
	// SourceExcel marks records read from the spreadsheet export.
	SourceExcel Source = "excel"
	// SourceQuickBooks marks records fetched from QuickBooks.
	SourceQuickBooks Source = "quickbooks"
)

// Record is the canonical in-memory representation of a customer.
type Record struct {
	// ID is the join key uniquely identifying the customer across sources.
	ID string `json:"record_id"`

	// Name is the display name after whitespace trimming.
	Name string `json:"name"`

	// Source is the system this record was read from.
	Source Source `json:"source"`
}

// RawRow is an untyped row as produced by a source adapter, before
// normalization. Either field may be nil or blank; Normalize decides
// whether that is fatal.
type RawRow struct {
	ID   any
	Name any
}

// Set maps record id to Record for one source. Uniqueness of ids within a
// Set is guaranteed by Normalize.
type Set map[string]Record
