package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"qb-sync/core/config"
	"qb-sync/core/customer"
	"qb-sync/core/database"
	"qb-sync/core/logger"
	"qb-sync/core/reconcile"
	"qb-sync/core/storage"
	"qb-sync/feature/excel"
	"qb-sync/feature/quickbooks"
	"qb-sync/feature/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	reportPath  string
	applyAdded  bool
	yesConfirm  bool
	archiveRun  bool
	skipHistory bool
)

// syncCmd runs a reconciliation against a workbook on disk.
var syncCmd = &cobra.Command{
	Use:   "sync <workbook.xlsx>",
	Short: "Reconcile a customer workbook against QuickBooks",
	Long: `Reconcile the customer list exported to Excel against QuickBooks.

Classifies every record id as added (spreadsheet only), conflict (QuickBooks
only, or present in both with differing names), or same, and writes the
result as a JSON report.

Examples:
  # Report only
  qb-sync sync customers.xlsx

  # Write the report somewhere specific
  qb-sync sync customers.xlsx --report out/report.json

  # Push spreadsheet-only customers into QuickBooks (with confirmation)
  qb-sync sync customers.xlsx --apply

  # Push with auto-confirm (non-interactive)
  qb-sync sync customers.xlsx --apply --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&reportPath, "report", "", "Report output path (default from config)")
	syncCmd.Flags().BoolVar(&applyAdded, "apply", false, "Create spreadsheet-only customers in QuickBooks")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm destructive actions (non-interactive)")
	syncCmd.Flags().BoolVar(&archiveRun, "archive", false, "Archive the report to object storage")
	syncCmd.Flags().BoolVar(&skipHistory, "no-history", false, "Skip recording the run in the database")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	workbookPath := args[0]

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	l.Info("Starting customer reconciliation", zap.String("workbook", workbookPath))

	// QuickBooks gateway over the remote-connector bridge
	gateway := quickbooks.NewGateway(quickbooks.NewHTTPProcessor(cfg.QuickBooks), cfg.QuickBooks, l)
	cache := quickbooks.NewIndexCache(gateway, time.Duration(cfg.QuickBooks.CacheTTLSeconds)*time.Second)

	// Run history is optional for CLI runs
	var store *report.Store
	if !skipHistory {
		if db, err := database.Connect(cfg.Database); err != nil {
			l.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			store = report.NewStore(db)
			if err := store.Migrate(); err != nil {
				l.Warn("Run history migration failed, run history disabled", zap.Error(err))
				store = nil
			}
		}
	}

	// Report archive is opt-in
	var archive *report.Archive
	if archiveRun || cfg.Report.Archive {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			l.Warn("Optional storage connection failed, archiving disabled", zap.Error(err))
		} else {
			archive = report.NewArchive(client, cfg.Storage.Bucket)
		}
	}

	svc := report.NewService(excel.NewReader(cfg.Excel), cache, store, archive, l)
	result, runErr := svc.Run(ctx, workbookPath)

	// The report is written on success and error runs alike.
	outPath := reportPath
	if outPath == "" {
		outPath = cfg.Report.Path
	}
	if err := report.WriteFile(outPath, result.Document); err != nil {
		return err
	}
	l.Info("Report written", zap.String("path", outPath), zap.String("run_id", result.RunID))

	if runErr != nil {
		return runErr
	}

	printReportSummary(l, result.Report)

	if applyAdded {
		return applyAddedCustomers(ctx, l, gateway, cache, result.Report)
	}
	if len(result.Report.AddedCustomers) > 0 {
		l.Info("Use --apply to create the spreadsheet-only customers in QuickBooks.")
	}
	return nil
}

// printReportSummary logs the classification counts and a sample of each bucket.
func printReportSummary(l *zap.Logger, rpt *reconcile.Report) {
	l.Info("Reconciliation report",
		zap.Int("added_customers", len(rpt.AddedCustomers)),
		zap.Int("conflicts", len(rpt.Conflicts)),
		zap.Int("same_customers", rpt.SameCustomers),
	)

	maxShow := 5
	for i, entry := range rpt.AddedCustomers {
		if i == maxShow {
			l.Info("Additional added customers not shown", zap.Int("count", len(rpt.AddedCustomers)-maxShow))
			break
		}
		l.Info("Added customer", zap.String("record_id", entry.RecordID), zap.String("name", entry.Name))
	}
	for i, entry := range rpt.Conflicts {
		if i == maxShow {
			l.Info("Additional conflicts not shown", zap.Int("count", len(rpt.Conflicts)-maxShow))
			break
		}
		l.Info("Conflict",
			zap.String("record_id", entry.RecordID),
			zap.String("reason", string(entry.Reason)),
		)
	}
}

// applyAddedCustomers pushes spreadsheet-only customers into QuickBooks.
func applyAddedCustomers(ctx context.Context, l *zap.Logger, gateway *quickbooks.Gateway, cache *quickbooks.IndexCache, rpt *reconcile.Report) error {
	if len(rpt.AddedCustomers) == 0 {
		l.Info("No customers to add.")
		return nil
	}

	if !confirmDestructiveAction(len(rpt.AddedCustomers)) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	records := make([]customer.Record, 0, len(rpt.AddedCustomers))
	for _, entry := range rpt.AddedCustomers {
		records = append(records, customer.Record{
			ID:     entry.RecordID,
			Name:   entry.Name,
			Source: customer.SourceExcel,
		})
	}

	created, err := gateway.AddCustomers(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to add customers: %w", err)
	}
	cache.Invalidate()

	l.Info("Successfully added customers", zap.Int("count", len(created)))
	for _, name := range created {
		l.Info("Added to QuickBooks", zap.String("name", name))
	}
	return nil
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(count int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to create %d customers in QuickBooks: ", count)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
