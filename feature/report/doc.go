// Package report orchestrates customer reconciliation runs and manages their
// output.
//
// A run reads two sources of truth and compares them with the
// `core/reconcile` engine:
//  1. Excel: the exported customer workbook (record id + name columns).
//  2. QuickBooks: the customer list fetched over QBXML (id in the Fax field).
//
// The resulting report is written as a JSON document and optionally recorded
// in the run-history database and archived to object storage. A run that
// fails before both sources are available still produces a report, with
// status "error" and empty buckets.
//
// # Components
//
//   - Service: Fetches and normalizes both sources, reconciles, and persists.
//   - Store: Run history on GORM (save, list, fetch by id).
//   - Writer: JSON report file output.
//   - Archive: Report document upload to object storage.
//   - Handler: Exposes HTTP endpoints for triggering runs and browsing history.
//   - Feature: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - POST /sync        : Upload a workbook and run a reconciliation.
//   - GET  /runs        : List recent runs.
//   - GET  /runs/:id    : Get a run with its full report document.
package report
