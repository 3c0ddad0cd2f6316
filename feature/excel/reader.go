package excel

import (
	"fmt"
	"strings"

	"qb-sync/core/customer"

	"github.com/xuri/excelize/v2"
)

// Reader extracts raw customer rows from an Excel workbook.
type Reader struct {
	cfg Config
}

// NewReader creates a workbook reader with the given column mapping.
func NewReader(cfg Config) *Reader {
	return &Reader{cfg: cfg}
}

// Read opens the workbook at path and returns its customer rows.
// The header row is resolved to a column mapping exactly once; a sheet
// without the configured id column fails fast with customer.ErrMissingID.
func (r *Reader) Read(path string) ([]customer.RawRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.cfg.Sheet)
	if err != nil {
		return nil, fmt.Errorf("worksheet %q not found in %s: %w", r.cfg.Sheet, path, err)
	}
	if len(rows) == 0 {
		return []customer.RawRow{}, nil
	}

	idCol, nameCol, err := r.mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	raw := make([]customer.RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		raw = append(raw, customer.RawRow{
			ID:   cellAt(row, idCol),
			Name: cellAt(row, nameCol),
		})
	}

	return raw, nil
}

// mapHeader resolves the configured column labels against the header row.
func (r *Reader) mapHeader(header []string) (idCol, nameCol int, err error) {
	idCol, nameCol = -1, -1
	for i, label := range header {
		switch strings.TrimSpace(label) {
		case r.cfg.IDColumn:
			idCol = i
		case r.cfg.NameColumn:
			nameCol = i
		}
	}

	if idCol < 0 {
		return 0, 0, fmt.Errorf("%w: column %q missing from sheet %q",
			customer.ErrMissingID, r.cfg.IDColumn, r.cfg.Sheet)
	}

	// A missing name column is tolerated: names may be absent per record.
	return idCol, nameCol, nil
}

// cellAt returns the cell value, or nil when the row is shorter than the
// mapped column or the column is absent.
func cellAt(row []string, col int) any {
	if col < 0 || col >= len(row) {
		return nil
	}
	return row[col]
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
