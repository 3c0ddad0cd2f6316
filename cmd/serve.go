package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qb-sync/core/config"
	"qb-sync/core/database"
	"qb-sync/core/loader"
	"qb-sync/core/logger"
	"qb-sync/core/middleware/auth"
	"qb-sync/core/middleware/rayid"
	"qb-sync/core/storage"

	"qb-sync/feature/excel"
	"qb-sync/feature/quickbooks"
	"qb-sync/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "qb-sync/docs/swagger"
)

// @title QuickBooks Customer Sync API
// @version 1.0
// @description API for reconciling exported customer workbooks against QuickBooks.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the reconciliation HTTP server",
	Long:  `Starts the HTTP server exposing reconciliation runs and run history.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		var store *report.Store
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, run history disabled", zap.Error(err))
		} else {
			store = report.NewStore(db)
			if err := store.Migrate(); err != nil {
				logg.Fatal("Failed to migrate run history", zap.Error(err))
			}
			logg.Info("Connected to run-history database")
		}

		// 4. Initialize Report Archive (Optional)
		var archive *report.Archive
		if cfg.Report.Archive {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			archive = report.NewArchive(client, cfg.Storage.Bucket)
		}

		// 5. QuickBooks gateway behind the TTL cache
		gateway := quickbooks.NewGateway(quickbooks.NewHTTPProcessor(cfg.QuickBooks), cfg.QuickBooks, logg)
		cache := quickbooks.NewIndexCache(gateway, time.Duration(cfg.QuickBooks.CacheTTLSeconds)*time.Second)

		svc := report.NewService(excel.NewReader(cfg.Excel), cache, store, archive, logg)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(report.NewFeature(svc, cfg.Report))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 10. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
