package reconcile

import (
	"sort"
	"time"

	"qb-sync/core/customer"
)

// Reconcile classifies every record id present in either set and returns the
// report. It is a pure function of its two inputs plus the current time used
// for the report header; neither input set is mutated.
func Reconcile(excelSet, qbSet customer.Set) *Report {
	union := buildUnion(excelSet, qbSet)

	report := &Report{
		Status:         StatusSuccess,
		Timestamp:      isoTimestamp(),
		AddedCustomers: []AddedEntry{},
		Conflicts:      []ConflictEntry{},
	}

	for id := range union {
		excelRec, inExcel := excelSet[id]
		qbRec, inQB := qbSet[id]

		switch {
		case inExcel && !inQB:
			report.AddedCustomers = append(report.AddedCustomers, AddedEntry{
				RecordID: id,
				Name:     excelRec.Name,
				Source:   customer.SourceExcel,
			})

		case inQB && !inExcel:
			report.Conflicts = append(report.Conflicts, ConflictEntry{
				RecordID:  id,
				ExcelName: nil,
				QBName:    strPtr(qbRec.Name),
				Reason:    ReasonMissingInExcel,
			})

		default:
			// Names were trimmed at the normalization boundary; equality here
			// is byte-for-byte.
			if excelRec.Name == qbRec.Name {
				report.SameCustomers++
			} else {
				report.Conflicts = append(report.Conflicts, ConflictEntry{
					RecordID:  id,
					ExcelName: strPtr(excelRec.Name),
					QBName:    strPtr(qbRec.Name),
					Reason:    ReasonDataMismatch,
				})
			}
		}
	}

	// Sort both sequences by record id for deterministic, diffable output.
	sort.Slice(report.AddedCustomers, func(i, j int) bool {
		return report.AddedCustomers[i].RecordID < report.AddedCustomers[j].RecordID
	})
	sort.Slice(report.Conflicts, func(i, j int) bool {
		return report.Conflicts[i].RecordID < report.Conflicts[j].RecordID
	})

	return report
}

// ErrorReport builds the failure-shaped report for a run whose sources could
// not be produced. The schema matches a success report; only the population
// differs.
func ErrorReport(err error) *Report {
	msg := err.Error()
	return &Report{
		Status:         StatusError,
		Timestamp:      isoTimestamp(),
		AddedCustomers: []AddedEntry{},
		Conflicts:      []ConflictEntry{},
		Error:          &msg,
	}
}

// buildUnion collects every record id appearing in either set.
func buildUnion(excelSet, qbSet customer.Set) map[string]struct{} {
	union := make(map[string]struct{}, len(excelSet)+len(qbSet))
	for id := range excelSet {
		union[id] = struct{}{}
	}
	for id := range qbSet {
		union[id] = struct{}{}
	}
	return union
}

func isoTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func strPtr(s string) *string {
	return &s
}
