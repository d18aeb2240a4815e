package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsedItemRequest un recurso a consumir al sembrar. El payload se normaliza
// en el borde HTTP: el núcleo solo ve itemId + quantity.
type UsedItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int64  `json:"quantity"`
}

// PlantCropRequest body para POST /api/v1/crop.
type PlantCropRequest struct {
	CropName       string            `json:"cropName"`
	Variety        string            `json:"variety,omitempty"`
	PlantingDate   time.Time         `json:"plantingDate"`
	HarvestingDate time.Time         `json:"harvestingDate"`
	UsedItems      []UsedItemRequest `json:"usedItems"`
}

// HarvestCropRequest body para PATCH /api/v1/crop/:id.
// Category es el ID de la categoría bajo la que entra la cosecha al inventario.
type HarvestCropRequest struct {
	ActualYield int64           `json:"actualYield"`
	Price       decimal.Decimal `json:"price"`
	HarvestedAt *time.Time      `json:"harvestedAt,omitempty"`
	Category    string          `json:"category"`
}

// ConsumedResourceDTO snapshot de un recurso consumido (itemName denormalizado).
type ConsumedResourceDTO struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`
}

// CropResponse representación de un cultivo.
type CropResponse struct {
	ID             string                `json:"id"`
	CropName       string                `json:"cropName"`
	Variety        string                `json:"variety,omitempty"`
	PlantingDate   time.Time             `json:"plantingDate"`
	HarvestingDate time.Time             `json:"harvestingDate"`
	HarvestedAt    *time.Time            `json:"harvestedAt,omitempty"`
	ActualYield    *int64                `json:"actualYield,omitempty"`
	Status         string                `json:"status"`
	ItemUsed       []ConsumedResourceDTO `json:"itemUsed"`
	CreatedAt      time.Time             `json:"createdAt"`
}
