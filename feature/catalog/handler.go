package catalog

import (
	"errors"

	"catalog-reconciler/core/logger"
	"catalog-reconciler/core/reconcile"
	"catalog-reconciler/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for catalog reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Post("/reconcile", h.HandleReconcile)
	group.Post("/score", h.HandleScore)
}

// HandleReconcile merges the two catalogs in the request body.
// @Summary Reconcile Catalogs
// @Description Merge primary descriptions with secondary prices for equivalent products.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.ReconcileRequest true "Catalogs"
// @Success 200 {object} models.ReconcileResponse "Merged catalog"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/reconcile [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	rows, summary, err := h.service.Reconcile(c.Context(), models.RawRows(req.Primary), models.RawRows(req.Secondary))
	if err != nil {
		if errors.Is(err, reconcile.ErrMalformedRow) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Reconciliation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Reconciliation served",
		zap.Int("primary", summary.Primary),
		zap.Int("secondary", summary.Secondary),
		zap.Int("matched", summary.Matched),
	)

	return c.JSON(models.ReconcileResponse{Rows: rows, Summary: summary})
}

// HandleScore compares two descriptions.
// @Summary Score Descriptions
// @Description Normalize and score a pair of descriptions against the match threshold.
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body models.ScoreRequest true "Descriptions"
// @Success 200 {object} match.Explanation "Score"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /catalog/score [post]
func (h *Handler) HandleScore(c *fiber.Ctx) error {
	var req models.ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	return c.JSON(h.service.Explain(req.A, req.B))
}
