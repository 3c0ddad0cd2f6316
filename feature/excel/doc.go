// Package excel reads customer rows from the spreadsheet export.
//
// The workbook is expected to carry a customers worksheet with a header row
// naming the id and name columns. The header mapping is validated once when
// the sheet is opened: a workbook without the id column fails immediately
// instead of surfacing missing-field errors deep inside reconciliation.
//
// The reader is a thin adapter: it produces untyped raw rows and leaves all
// data-quality policy (missing ids, duplicates, trimming) to the
// customer.Normalize boundary.
package excel
