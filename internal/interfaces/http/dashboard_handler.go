package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
)

// umbral por defecto de stock bajo para el dashboard.
const defaultLowStockThreshold = 10

// DashboardHandler expone el resumen de la finca.
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary devuelve totales de inventario, cultivos por estado y stock bajo.
// GET /api/v1/dashboard?threshold=N
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	threshold := int64(defaultLowStockThreshold)
	if raw := c.Query("threshold"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("threshold inválido"))
		}
		threshold = n
	}
	summary, err := h.uc.Summary(GetUserID(c), threshold)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("resumen obtenido", summary))
}
