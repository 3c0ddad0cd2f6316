package report

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"qb-sync/core/customer"
	"qb-sync/core/reconcile"
	"qb-sync/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeExcel struct {
	rows []customer.RawRow
	err  error
}

func (f fakeExcel) Read(string) ([]customer.RawRow, error) {
	return f.rows, f.err
}

type fakeQuickBooks struct {
	set customer.Set
	err error
}

func (f fakeQuickBooks) Get(context.Context) (customer.Set, error) {
	return f.set, f.err
}

func qbSet(t *testing.T, rows ...customer.RawRow) customer.Set {
	t.Helper()
	set, err := customer.Normalize(rows, customer.SourceQuickBooks)
	require.NoError(t, err)
	return set
}

func TestService_Run(t *testing.T) {
	excel := fakeExcel{rows: []customer.RawRow{
		{ID: "2", Name: "Acme"},
		{ID: "14", Name: "xyz"},
		{ID: "35", Name: "aboya"},
	}}
	qb := fakeQuickBooks{set: qbSet(t,
		customer.RawRow{ID: "2", Name: "Acme"},
		customer.RawRow{ID: "14", Name: "tyu"},
		customer.RawRow{ID: "6", Name: "DOLLY"},
	)}

	svc := NewService(excel, qb, nil, nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.NoError(t, err)

	rpt := result.Report
	assert.Equal(t, reconcile.StatusSuccess, rpt.Status)
	require.Len(t, rpt.AddedCustomers, 1)
	assert.Equal(t, "35", rpt.AddedCustomers[0].RecordID)
	require.Len(t, rpt.Conflicts, 2)
	assert.Equal(t, 1, rpt.SameCustomers)

	assert.NotEmpty(t, result.RunID)

	// The document is the marshalled report.
	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(result.Document, &decoded))
	assert.Equal(t, rpt.SameCustomers, decoded.SameCustomers)
}

func TestService_Run_ExcelFailure(t *testing.T) {
	excel := fakeExcel{err: fmt.Errorf("workbook corrupted")}
	qb := fakeQuickBooks{set: customer.Set{}}

	svc := NewService(excel, qb, nil, nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "excel source")

	rpt := result.Report
	assert.Equal(t, reconcile.StatusError, rpt.Status)
	assert.Empty(t, rpt.AddedCustomers)
	assert.Empty(t, rpt.Conflicts)
	assert.Zero(t, rpt.SameCustomers)
	require.NotNil(t, rpt.Error)
	assert.Contains(t, *rpt.Error, "workbook corrupted")
}

func TestService_Run_QuickBooksFailure(t *testing.T) {
	excel := fakeExcel{rows: []customer.RawRow{{ID: "2", Name: "Acme"}}}
	qb := fakeQuickBooks{err: fmt.Errorf("connection refused")}

	svc := NewService(excel, qb, nil, nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quickbooks source")
	assert.Equal(t, reconcile.StatusError, result.Report.Status)
}

func TestService_Run_NormalizationFailure(t *testing.T) {
	// A duplicate id in the workbook is fatal, not a conflict.
	excel := fakeExcel{rows: []customer.RawRow{
		{ID: "30", Name: "A"},
		{ID: 30.0, Name: "B"},
	}}
	qb := fakeQuickBooks{set: customer.Set{}}

	svc := NewService(excel, qb, nil, nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrDuplicateID)
	assert.Equal(t, reconcile.StatusError, result.Report.Status)
}

func TestService_Run_RecordsHistory(t *testing.T) {
	db, dbMock := setupMockDB(t)
	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO `reconciliation_runs`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	dbMock.ExpectCommit()

	excel := fakeExcel{rows: []customer.RawRow{{ID: "2", Name: "Acme"}}}
	qb := fakeQuickBooks{set: qbSet(t, customer.RawRow{ID: "2", Name: "Acme"})}

	svc := NewService(excel, qb, NewStore(db), nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.SameCustomers)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestService_Run_HistoryFailureIsNotFatal(t *testing.T) {
	db, dbMock := setupMockDB(t)
	dbMock.ExpectBegin()
	dbMock.ExpectExec("INSERT INTO `reconciliation_runs`").
		WillReturnError(fmt.Errorf("table gone"))
	dbMock.ExpectRollback()

	excel := fakeExcel{rows: []customer.RawRow{{ID: "2", Name: "Acme"}}}
	qb := fakeQuickBooks{set: qbSet(t, customer.RawRow{ID: "2", Name: "Acme"})}

	svc := NewService(excel, qb, NewStore(db), nil, zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusSuccess, result.Report.Status)
}

func TestService_Run_Archives(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "qb-sync-reports").Return(true, nil)
	client.On("PutObject", mock.Anything, "qb-sync-reports", mock.MatchedBy(func(name string) bool {
		return len(name) > len("reports/") && name[:len("reports/")] == "reports/"
	}), mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	excel := fakeExcel{rows: []customer.RawRow{{ID: "2", Name: "Acme"}}}
	qb := fakeQuickBooks{set: qbSet(t, customer.RawRow{ID: "2", Name: "Acme"})}

	svc := NewService(excel, qb, nil, NewArchive(client, "qb-sync-reports"), zap.NewNop())
	_, err := svc.Run(context.Background(), "customers.xlsx")
	require.NoError(t, err)

	client.AssertExpectations(t)
}

func TestService_Run_ArchiveFailureIsNotFatal(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "qb-sync-reports").
		Return(false, fmt.Errorf("storage unreachable"))

	excel := fakeExcel{rows: []customer.RawRow{{ID: "2", Name: "Acme"}}}
	qb := fakeQuickBooks{set: qbSet(t, customer.RawRow{ID: "2", Name: "Acme"})}

	svc := NewService(excel, qb, nil, NewArchive(client, "qb-sync-reports"), zap.NewNop())
	result, err := svc.Run(context.Background(), "customers.xlsx")
	require.NoError(t, err)
	assert.Equal(t, reconcile.StatusSuccess, result.Report.Status)
}
