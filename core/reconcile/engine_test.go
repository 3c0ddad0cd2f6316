package reconcile

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"qb-sync/core/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func excelSet(pairs map[string]string) customer.Set {
	set := make(customer.Set, len(pairs))
	for id, name := range pairs {
		set[id] = customer.Record{ID: id, Name: name, Source: customer.SourceExcel}
	}
	return set
}

func qbSet(pairs map[string]string) customer.Set {
	set := make(customer.Set, len(pairs))
	for id, name := range pairs {
		set[id] = customer.Record{ID: id, Name: name, Source: customer.SourceQuickBooks}
	}
	return set
}

// TestReconcile_ExcelOnly covers an id present only on the spreadsheet side.
func TestReconcile_ExcelOnly(t *testing.T) {
	report := Reconcile(excelSet(map[string]string{"35": "aboya"}), qbSet(nil))

	assert.Equal(t, StatusSuccess, report.Status)
	require.Len(t, report.AddedCustomers, 1)
	assert.Equal(t, AddedEntry{RecordID: "35", Name: "aboya", Source: customer.SourceExcel}, report.AddedCustomers[0])
	assert.Empty(t, report.Conflicts)
	assert.Zero(t, report.SameCustomers)
	assert.Nil(t, report.Error)
}

// TestReconcile_DataMismatch covers an id present in both sides with
// differing names.
func TestReconcile_DataMismatch(t *testing.T) {
	report := Reconcile(
		excelSet(map[string]string{"14": "xyz"}),
		qbSet(map[string]string{"14": "tyu"}),
	)

	require.Len(t, report.Conflicts, 1)
	conflict := report.Conflicts[0]
	assert.Equal(t, "14", conflict.RecordID)
	require.NotNil(t, conflict.ExcelName)
	require.NotNil(t, conflict.QBName)
	assert.Equal(t, "xyz", *conflict.ExcelName)
	assert.Equal(t, "tyu", *conflict.QBName)
	assert.Equal(t, ReasonDataMismatch, conflict.Reason)
	assert.Empty(t, report.AddedCustomers)
	assert.Zero(t, report.SameCustomers)
}

// TestReconcile_MissingInExcel covers an id present only on the QuickBooks
// side.
func TestReconcile_MissingInExcel(t *testing.T) {
	report := Reconcile(excelSet(nil), qbSet(map[string]string{"6": "DOLLY"}))

	require.Len(t, report.Conflicts, 1)
	conflict := report.Conflicts[0]
	assert.Equal(t, "6", conflict.RecordID)
	assert.Nil(t, conflict.ExcelName)
	require.NotNil(t, conflict.QBName)
	assert.Equal(t, "DOLLY", *conflict.QBName)
	assert.Equal(t, ReasonMissingInExcel, conflict.Reason)
	assert.Empty(t, report.AddedCustomers)
}

// TestReconcile_Same covers an id present in both sides with equal names.
func TestReconcile_Same(t *testing.T) {
	report := Reconcile(
		excelSet(map[string]string{"2": "Acme"}),
		qbSet(map[string]string{"2": "Acme"}),
	)

	assert.Equal(t, 1, report.SameCustomers)
	assert.Empty(t, report.AddedCustomers)
	assert.Empty(t, report.Conflicts)
}

// TestReconcile_FullRun reproduces the end-to-end example report.
func TestReconcile_FullRun(t *testing.T) {
	report := Reconcile(
		excelSet(map[string]string{"35": "aboya", "2": "Acme", "14": "xyz"}),
		qbSet(map[string]string{"14": "tyu", "6": "DOLLY", "19": "sunny", "2": "Acme"}),
	)

	assert.Equal(t, StatusSuccess, report.Status)

	require.Len(t, report.AddedCustomers, 1)
	assert.Equal(t, "35", report.AddedCustomers[0].RecordID)
	assert.Equal(t, "aboya", report.AddedCustomers[0].Name)

	require.Len(t, report.Conflicts, 3)
	// Lexicographic id order: "14" < "19" < "6".
	assert.Equal(t, "14", report.Conflicts[0].RecordID)
	assert.Equal(t, ReasonDataMismatch, report.Conflicts[0].Reason)
	assert.Equal(t, "19", report.Conflicts[1].RecordID)
	assert.Equal(t, ReasonMissingInExcel, report.Conflicts[1].Reason)
	assert.Equal(t, "6", report.Conflicts[2].RecordID)
	assert.Equal(t, ReasonMissingInExcel, report.Conflicts[2].Reason)

	assert.Equal(t, 1, report.SameCustomers)
}

// TestReconcile_Partition verifies the three buckets partition the union of
// both key sets: every id lands in exactly one bucket.
func TestReconcile_Partition(t *testing.T) {
	excel := excelSet(map[string]string{
		"1": "a", "2": "b", "3": "c", "4": "d",
	})
	qb := qbSet(map[string]string{
		"3": "c", "4": "x", "5": "e", "6": "f",
	})

	report := Reconcile(excel, qb)

	seen := make(map[string]int)
	for _, entry := range report.AddedCustomers {
		seen[entry.RecordID]++
	}
	for _, entry := range report.Conflicts {
		seen[entry.RecordID]++
	}

	union := make(map[string]struct{})
	for id := range excel {
		union[id] = struct{}{}
	}
	for id := range qb {
		union[id] = struct{}{}
	}

	// Each listed id appears exactly once.
	for id, count := range seen {
		assert.Equal(t, 1, count, "id %s appears in more than one bucket", id)
	}

	// Listed ids plus same-count cover the whole union.
	assert.Equal(t, len(union), len(seen)+report.SameCustomers)
}

// TestReconcile_SymmetryBreaking: qb-only ids never surface as additions and
// excel-only ids never surface as conflicts.
func TestReconcile_SymmetryBreaking(t *testing.T) {
	report := Reconcile(
		excelSet(map[string]string{"only-excel": "a"}),
		qbSet(map[string]string{"only-qb": "b"}),
	)

	require.Len(t, report.AddedCustomers, 1)
	assert.Equal(t, "only-excel", report.AddedCustomers[0].RecordID)

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "only-qb", report.Conflicts[0].RecordID)
}

// TestReconcile_Deterministic: identical inputs yield byte-identical bucket
// serialization across runs regardless of map iteration order.
func TestReconcile_Deterministic(t *testing.T) {
	excel := excelSet(map[string]string{
		"9": "i", "10": "j", "11": "k", "2": "b", "35": "a", "100": "z",
	})
	qb := qbSet(map[string]string{
		"10": "J", "3": "c", "42": "q", "2": "b",
	})

	first := Reconcile(excel, qb)
	second := Reconcile(excel, qb)

	firstAdded, err := json.Marshal(first.AddedCustomers)
	require.NoError(t, err)
	secondAdded, err := json.Marshal(second.AddedCustomers)
	require.NoError(t, err)
	assert.Equal(t, firstAdded, secondAdded)

	firstConflicts, err := json.Marshal(first.Conflicts)
	require.NoError(t, err)
	secondConflicts, err := json.Marshal(second.Conflicts)
	require.NoError(t, err)
	assert.Equal(t, firstConflicts, secondConflicts)
}

// TestReconcile_CaseSensitiveNames: equality is exact after trim, not folded.
func TestReconcile_CaseSensitiveNames(t *testing.T) {
	report := Reconcile(
		excelSet(map[string]string{"1": "acme"}),
		qbSet(map[string]string{"1": "ACME"}),
	)

	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, ReasonDataMismatch, report.Conflicts[0].Reason)
	assert.Zero(t, report.SameCustomers)
}

func TestReconcile_EmptyInputs(t *testing.T) {
	report := Reconcile(excelSet(nil), qbSet(nil))

	assert.Equal(t, StatusSuccess, report.Status)
	assert.NotNil(t, report.AddedCustomers)
	assert.NotNil(t, report.Conflicts)
	assert.Empty(t, report.AddedCustomers)
	assert.Empty(t, report.Conflicts)
	assert.Zero(t, report.SameCustomers)
}

func TestReconcile_InputsNotMutated(t *testing.T) {
	excel := excelSet(map[string]string{"1": "a"})
	qb := qbSet(map[string]string{"2": "b"})

	_ = Reconcile(excel, qb)

	assert.Len(t, excel, 1)
	assert.Len(t, qb, 1)
	assert.Equal(t, "a", excel["1"].Name)
	assert.Equal(t, "b", qb["2"].Name)
}

func TestReconcile_Timestamp(t *testing.T) {
	report := Reconcile(excelSet(nil), qbSet(nil))

	ts, err := time.Parse(time.RFC3339, report.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestErrorReport(t *testing.T) {
	report := ErrorReport(errors.New("quickbooks unavailable"))

	assert.Equal(t, StatusError, report.Status)
	require.NotNil(t, report.Error)
	assert.Equal(t, "quickbooks unavailable", *report.Error)
	assert.NotNil(t, report.AddedCustomers)
	assert.NotNil(t, report.Conflicts)
	assert.Empty(t, report.AddedCustomers)
	assert.Empty(t, report.Conflicts)
	assert.Zero(t, report.SameCustomers)
}

// TestReport_JSONShape: the serialized field set is stable and identical for
// success and error reports.
func TestReport_JSONShape(t *testing.T) {
	for name, report := range map[string]*Report{
		"Success": Reconcile(excelSet(nil), qbSet(nil)),
		"Error":   ErrorReport(errors.New("boom")),
	} {
		t.Run(name, func(t *testing.T) {
			raw, err := json.Marshal(report)
			require.NoError(t, err)

			var decoded map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw, &decoded))

			for _, field := range []string{"status", "timestamp", "added_customers", "conflicts", "same_customers", "error"} {
				assert.Contains(t, decoded, field)
			}
		})
	}
}
