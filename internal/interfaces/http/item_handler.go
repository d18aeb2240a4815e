package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
)

// ItemHandler expone el CRUD de categorías e ítems del inventario.
type ItemHandler struct {
	categoryUC *usecase.CategoryUseCase
	itemUC     *usecase.ItemUseCase
}

func NewItemHandler(categoryUC *usecase.CategoryUseCase, itemUC *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{categoryUC: categoryUC, itemUC: itemUC}
}

// AddCategory crea una categoría con su unidad de medida.
// POST /api/v1/item/addCategory
func (h *ItemHandler) AddCategory(c *fiber.Ctx) error {
	var req dto.AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	category, err := h.categoryUC.AddCategory(GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("categoría creada", category))
}

// GetCategories lista las categorías del usuario.
// GET /api/v1/item/getCategories
func (h *ItemHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryUC.ListCategories(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categorías obtenidas", categories))
}

// AddItem crea un ítem con su stock inicial.
// POST /api/v1/item/addItem
func (h *ItemHandler) AddItem(c *fiber.Ctx) error {
	var req dto.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	item, err := h.itemUC.AddItem(c.Context(), GetUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK("ítem agregado al inventario", item))
}

// GetItems lista el inventario del usuario con cantidades.
// GET /api/v1/item/getItems
func (h *ItemHandler) GetItems(c *fiber.Ctx) error {
	items, err := h.itemUC.GetItems(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("inventario obtenido", items))
}

// UpdateItem actualiza nombre, precio o cantidad de un ítem.
// PATCH /api/v1/item/updateItem/:id
func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	var req dto.UpdateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo de la petición inválido"))
	}
	item, err := h.itemUC.UpdateItem(c.Context(), GetUserID(c), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ítem actualizado", item))
}

// DeleteItem elimina un ítem y su stock.
// DELETE /api/v1/item/delete/:id
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	if err := h.itemUC.DeleteItem(c.Context(), GetUserID(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ítem eliminado", nil))
}
