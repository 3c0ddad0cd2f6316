package report

import (
	"encoding/json"
	"time"

	"qb-sync/core/reconcile"
)

// Run is a persisted reconciliation run. Document holds the full report
// JSON; the count columns are denormalized so listing runs does not require
// parsing documents.
type Run struct {
	ID            string          `gorm:"column:id;primaryKey;size:36" json:"id"`
	Status        string          `gorm:"column:status;size:16" json:"status"`
	AddedCount    int             `gorm:"column:added_count" json:"added_count"`
	ConflictCount int             `gorm:"column:conflict_count" json:"conflict_count"`
	SameCount     int             `gorm:"column:same_count" json:"same_count"`
	Error         string          `gorm:"column:error" json:"error,omitempty"`
	Document      json.RawMessage `gorm:"column:document;type:json" json:"document,omitempty"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Run) TableName() string {
	return "reconciliation_runs"
}

// NewRun builds a run record from a report.
func NewRun(id string, rpt *reconcile.Report, document []byte) Run {
	run := Run{
		ID:            id,
		Status:        string(rpt.Status),
		AddedCount:    len(rpt.AddedCustomers),
		ConflictCount: len(rpt.Conflicts),
		SameCount:     rpt.SameCustomers,
		Document:      document,
	}
	if rpt.Error != nil {
		run.Error = *rpt.Error
	}
	return run
}
