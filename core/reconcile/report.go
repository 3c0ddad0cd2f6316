package reconcile

import (
	"qb-sync/core/customer"
)

// Status indicates whether a reconciliation run completed.
type Status string

const (
	// StatusSuccess means both sources were normalized and reconciled.
	StatusSuccess Status = "success"
	// StatusError means a source could not be produced; the buckets are empty.
	StatusError Status = "error"
)

// ConflictReason explains why a record id is reported as a conflict.
type ConflictReason string

const (
	// ReasonDataMismatch: the id exists in both sources with differing names.
	ReasonDataMismatch ConflictReason = "data_mismatch"
	// ReasonMissingInExcel: the id exists in QuickBooks but not in the spreadsheet.
	ReasonMissingInExcel ConflictReason = "missing_in_excel"
)

// AddedEntry describes a customer present only in the spreadsheet.
type AddedEntry struct {
	// RecordID is the customer's join key.
	RecordID string `json:"record_id"`

	// Name is the normalized display name from the spreadsheet.
	Name string `json:"name"`

	// Source is always the excel side; additions flow excel -> quickbooks.
	Source customer.Source `json:"source"`
}

// ConflictEntry describes a record id that cannot be classified as same or
// added. ExcelName is nil when the id is missing from the spreadsheet.
type ConflictEntry struct {
	// RecordID is the conflicting join key.
	RecordID string `json:"record_id"`

	// ExcelName is the spreadsheet-side name, nil if absent there.
	ExcelName *string `json:"excel_name"`

	// QBName is the QuickBooks-side name, nil if absent there.
	QBName *string `json:"qb_name"`

	// Reason explains the conflict type.
	Reason ConflictReason `json:"reason"`
}

// Report is the sole output artifact of a reconciliation run. It is built
// fresh per run and never mutated afterwards. The field set is identical for
// success and error runs; an error run simply carries empty buckets and a
// message in Error.
type Report struct {
	// Status is success or error.
	Status Status `json:"status"`

	// Timestamp is the UTC instant the report was built, ISO-8601 formatted.
	Timestamp string `json:"timestamp"`

	// AddedCustomers lists spreadsheet-only records, ordered by record id.
	AddedCustomers []AddedEntry `json:"added_customers"`

	// Conflicts lists mismatched and quickbooks-only records, ordered by record id.
	Conflicts []ConflictEntry `json:"conflicts"`

	// SameCustomers counts ids present in both sources with equal names.
	SameCustomers int `json:"same_customers"`

	// Error holds a human-readable message for error runs, nil on success.
	Error *string `json:"error"`
}
