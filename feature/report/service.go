package report

import (
	"context"
	"fmt"

	"qb-sync/core/customer"
	"qb-sync/core/reconcile"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ExcelSource reads raw customer rows from a workbook.
type ExcelSource interface {
	Read(path string) ([]customer.RawRow, error)
}

// QuickBooksSource returns the normalized QuickBooks customer set.
type QuickBooksSource interface {
	Get(ctx context.Context) (customer.Set, error)
}

// Service runs reconciliations and persists their reports.
type Service struct {
	excel   ExcelSource
	qb      QuickBooksSource
	store   *Store   // nil disables run history
	archive *Archive // nil disables archiving
	logger  *zap.Logger
}

// NewService creates a reconciliation service. store and archive may be nil;
// the corresponding persistence is skipped.
func NewService(excel ExcelSource, qb QuickBooksSource, store *Store, archive *Archive, logger *zap.Logger) *Service {
	return &Service{
		excel:   excel,
		qb:      qb,
		store:   store,
		archive: archive,
		logger:  logger,
	}
}

// Result is the outcome of a reconciliation run.
type Result struct {
	// RunID identifies the run in history and the archive.
	RunID string
	// Report is never nil; failed runs carry an error report.
	Report *reconcile.Report
	// Document is the marshalled report JSON.
	Document []byte
}

// Run reads both customer sources, reconciles them, and persists the report.
// The returned result always carries a report; err is non-nil when a source
// could not be produced, in which case the report has status "error".
func (s *Service) Run(ctx context.Context, workbookPath string) (*Result, error) {
	var excelSet, qbSet customer.Set

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.excel.Read(workbookPath)
		if err != nil {
			return fmt.Errorf("excel source: %w", err)
		}
		set, err := customer.Normalize(rows, customer.SourceExcel)
		if err != nil {
			return fmt.Errorf("excel source: %w", err)
		}
		excelSet = set
		return nil
	})
	g.Go(func() error {
		set, err := s.qb.Get(gctx)
		if err != nil {
			return fmt.Errorf("quickbooks source: %w", err)
		}
		qbSet = set
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Reconciliation run failed", zap.Error(err))
		return s.finish(ctx, reconcile.ErrorReport(err)), err
	}

	rpt := reconcile.Reconcile(excelSet, qbSet)
	s.logger.Info("Reconciliation complete",
		zap.Int("added", len(rpt.AddedCustomers)),
		zap.Int("conflicts", len(rpt.Conflicts)),
		zap.Int("same", rpt.SameCustomers),
	)

	return s.finish(ctx, rpt), nil
}

// finish marshals the report and persists it best-effort; history and
// archive failures are logged but never fail the run.
func (s *Service) finish(ctx context.Context, rpt *reconcile.Report) *Result {
	runID := uuid.NewString()

	document, err := Marshal(rpt)
	if err != nil {
		s.logger.Error("Failed to marshal report", zap.String("run_id", runID), zap.Error(err))
		return &Result{RunID: runID, Report: rpt}
	}

	if s.store != nil {
		if err := s.store.Save(ctx, NewRun(runID, rpt, document)); err != nil {
			s.logger.Warn("Failed to record run history", zap.String("run_id", runID), zap.Error(err))
		}
	}
	if s.archive != nil {
		if err := s.archive.Store(ctx, runID, document); err != nil {
			s.logger.Warn("Failed to archive report", zap.String("run_id", runID), zap.Error(err))
		}
	}

	return &Result{RunID: runID, Report: rpt, Document: document}
}
