package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCategoryRequest body para POST /api/v1/item/addCategory.
type AddCategoryRequest struct {
	CategoryName string `json:"categoryName"`
	Unit         string `json:"unit"`
}

// CategoryResponse representación de una categoría.
type CategoryResponse struct {
	ID           string    `json:"id"`
	CategoryName string    `json:"categoryName"`
	Unit         string    `json:"unit"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AddItemRequest body para POST /api/v1/item/addItem.
// El stock inicial (Quantity) se crea junto con el ítem en la misma transacción.
type AddItemRequest struct {
	ItemName   string          `json:"itemName"`
	CategoryID string          `json:"categoryId"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
}

// UpdateItemRequest body para PATCH /api/v1/item/updateItem/:id.
// Punteros: solo se actualizan los campos presentes.
type UpdateItemRequest struct {
	ItemName *string          `json:"itemName,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity *int64           `json:"quantity,omitempty"`
}

// ItemResponse fila de GET /api/v1/item/getItems: ítem con su stock resuelto
// (misma forma que el populate del backend original).
type ItemResponse struct {
	ItemID     string          `json:"itemId"`
	StockID    string          `json:"stockId"`
	ItemName   string          `json:"itemName"`
	CategoryID string          `json:"category"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int64           `json:"quantity"`
}
