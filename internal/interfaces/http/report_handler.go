package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/report"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
)

// ReportHandler genera el reporte PDF de cultivos.
type ReportHandler struct {
	uc  *report.CropReportUseCase
	log *logger.Logger
}

func NewReportHandler(uc *report.CropReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// Crops descarga el reporte PDF con los cultivos del usuario.
// GET /api/v1/report/crops
func (h *ReportHandler) Crops(c *fiber.Ctx) error {
	ownerID := GetUserID(c)
	pdfBytes, err := h.uc.Generate(c.Context(), ownerID)
	if err != nil {
		if statusFor(err) == fiber.StatusInternalServerError {
			h.log.Error().Err(err).Str("owner_id", ownerID).Msg("fallo al generar reporte de cultivos")
		}
		return respondError(c, err)
	}
	filename := fmt.Sprintf("cultivos_%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
