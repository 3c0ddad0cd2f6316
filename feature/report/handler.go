package report

import (
	"errors"
	"os"
	"path/filepath"

	"qb-sync/core/logger"
	"qb-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
	cfg     Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/sync", h.HandleSync)
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
}

// HandleSync runs a reconciliation against an uploaded workbook.
// @Summary Run Reconciliation
// @Description Upload a customer workbook and reconcile it against QuickBooks.
// @Tags sync
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Customer workbook (.xlsx)"
// @Success 200 {object} reconcile.Report "Reconciliation Report"
// @Failure 400 {object} map[string]string "Missing or unreadable upload"
// @Failure 502 {object} reconcile.Report "Error report: a source failed"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "missing workbook upload 'file'",
		})
	}

	// The workbook reader works on paths, so spool the upload to disk.
	dir, err := os.MkdirTemp("", "qb-sync-upload-")
	if err != nil {
		l.Error("Failed to create upload directory", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, filepath.Base(file.Filename))
	if err := c.SaveFile(file, path); err != nil {
		l.Error("Failed to save upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	result, _ := h.service.Run(c.Context(), path)
	status := fiber.StatusOK
	if result.Report.Status == reconcile.StatusError {
		status = fiber.StatusBadGateway
	}

	l.Info("Reconciliation run served",
		zap.String("run_id", result.RunID),
		zap.String("status", string(result.Report.Status)),
	)
	return c.Status(status).JSON(result.Report)
}

// HandleListRuns lists recent reconciliation runs.
// @Summary List Runs
// @Description List recent reconciliation runs, newest first.
// @Tags sync
// @Produce json
// @Success 200 {array} report.Run "Runs"
// @Failure 503 {object} map[string]string "Run history disabled"
// @Router /runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if h.service.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history is disabled",
		})
	}

	runs, err := h.service.store.List(c.Context(), h.cfg.HistoryLimit)
	if err != nil {
		l.Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(runs)
}

// HandleGetRun returns a single run with its report document.
// @Summary Get Run
// @Description Get a reconciliation run, including the full report document.
// @Tags sync
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} report.Run "Run"
// @Failure 404 {object} map[string]string "Unknown run id"
// @Failure 503 {object} map[string]string "Run history disabled"
// @Router /runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if h.service.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "run history is disabled",
		})
	}

	run, err := h.service.store.Get(c.Context(), c.Params("id"))
	if errors.Is(err, ErrRunNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Failed to load run", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(run)
}
