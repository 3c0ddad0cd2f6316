// Package reconcile implements the diff engine that compares the Excel-side
// customer set against the QuickBooks-side set and emits a single
// deterministic report.
//
// The engine builds the union of record ids from both sets and classifies
// every id into exactly one of three buckets:
//
//  1. Added: ids present only on the Excel side. These are new customers to
//     create in QuickBooks.
//  2. Conflicts: ids present in both sets with differing names
//     (data_mismatch), or ids present only in QuickBooks
//     (missing_in_excel). The direction of the reconciliation is
//     excel -> quickbooks, so a one-sided QuickBooks record is a conflict
//     while a one-sided Excel record is an addition.
//  3. Same: ids present in both sets with equal names, reported as a count.
//
// The three buckets partition the union of both key sets: every id lands in
// exactly one bucket.
//
// # Determinism
//
// Added entries and conflicts are sorted in ascending lexicographic order of
// record id, independent of map iteration order, so two runs over identical
// inputs produce byte-identical report bodies (timestamp aside).
//
// # Errors
//
// Reconcile raises no errors: it is total over any two valid customer sets.
// All fallibility lives upstream in normalization and source fetching; when
// either input cannot be produced, callers build the failure artifact with
// ErrorReport instead of invoking Reconcile.
package reconcile
