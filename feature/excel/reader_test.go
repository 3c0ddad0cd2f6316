package excel

import (
	"path/filepath"
	"testing"

	"qb-sync/core/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func defaultConfig() Config {
	return Config{Sheet: "customers", IDColumn: "ID", NameColumn: "Name"}
}

// writeWorkbook creates a temp workbook with a customers sheet from the given
// rows (header included).
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet("customers")
	require.NoError(t, err)
	require.NoError(t, f.DeleteSheet("Sheet1"))

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("customers", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "company_data.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReader_Read(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Term", "ID"},
		{"ABC-Munster Indiana, INC. - Plant 1", "Net 45", 1},
		{"Air-O'Fallon", "None", 2},
		{"XYZ-Chicago", "Net 30", 3},
	})

	rows, err := NewReader(defaultConfig()).Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	set, err := customer.Normalize(rows, customer.SourceExcel)
	require.NoError(t, err)
	assert.Equal(t, "ABC-Munster Indiana, INC. - Plant 1", set["1"].Name)
	assert.Equal(t, "Air-O'Fallon", set["2"].Name)
	assert.Equal(t, "XYZ-Chicago", set["3"].Name)
}

func TestReader_SkipsBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "ID"},
		{"Acme", 1},
		{"", ""},
		{"Globex", 2},
	})

	rows, err := NewReader(defaultConfig()).Read(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReader_MissingIDColumn(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"Name", "Term"},
		{"Acme", "Net 30"},
	})

	rows, err := NewReader(defaultConfig()).Read(path)
	assert.Nil(t, rows)
	assert.ErrorIs(t, err, customer.ErrMissingID)
}

func TestReader_MissingNameColumnTolerated(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"ID"},
		{7},
	})

	rows, err := NewReader(defaultConfig()).Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].Name)
}

func TestReader_ShortRows(t *testing.T) {
	// Rows narrower than the header must not panic; the missing cell reads
	// as nil and the normalizer decides what to do with it.
	path := writeWorkbook(t, [][]any{
		{"Name", "Term", "ID"},
		{"Acme"},
	})

	rows, err := NewReader(defaultConfig()).Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].ID)
}

func TestReader_MissingSheet(t *testing.T) {
	f := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "nosheet.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	_, err := NewReader(defaultConfig()).Read(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "customers")
}

func TestReader_MissingFile(t *testing.T) {
	_, err := NewReader(defaultConfig()).Read(filepath.Join(t.TempDir(), "absent.xlsx"))
	assert.Error(t, err)
}
