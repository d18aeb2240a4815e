package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/crop"
	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/pkg/logger"
)

// CropHandler expone el ciclo de vida de cultivos: siembra, cosecha y listado.
type CropHandler struct {
	uc  *crop.LifecycleUseCase
	log *logger.Logger
}

func NewCropHandler(uc *crop.LifecycleUseCase, log *logger.Logger) *CropHandler {
	return &CropHandler{uc: uc, log: log}
}

// Plant registra un cultivo descontando los insumos del stock.
// POST /api/v1/crop
func (h *CropHandler) Plant(c *fiber.Ctx) error {
	var req dto.PlantCropRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	ownerID := GetUserID(c)
	res, err := h.uc.PlantCrop(c.Context(), ownerID, req)
	if err != nil {
		if statusFor(err) == fiber.StatusInternalServerError {
			h.log.Error().Err(err).
				Str("owner_id", ownerID).
				Str("crop_name", req.CropName).
				Msg("fallo al sembrar cultivo")
		}
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("cultivo sembrado", res))
}

// Harvest marca un cultivo como cosechado y da de alta el producto resultante.
// PATCH /api/v1/crop/:id
func (h *CropHandler) Harvest(c *fiber.Ctx) error {
	var req dto.HarvestCropRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	ownerID := GetUserID(c)
	cropID := c.Params("id")
	res, err := h.uc.HarvestCrop(c.Context(), ownerID, cropID, req)
	if err != nil {
		if statusFor(err) == fiber.StatusInternalServerError {
			h.log.Error().Err(err).
				Str("owner_id", ownerID).
				Str("crop_id", cropID).
				Msg("fallo al cosechar cultivo")
		}
		return respondError(c, err)
	}
	return c.JSON(dto.OK("cultivo cosechado", res))
}

// List devuelve los cultivos del usuario.
// GET /api/v1/crop
func (h *CropHandler) List(c *fiber.Ctx) error {
	crops, err := h.uc.ListCrops(c.Context(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("cultivos obtenidos", crops))
}
