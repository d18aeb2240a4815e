package entity

import "time"

// Estados de un cultivo. La transición es de una sola vía:
// Planted -> Harvested, exactamente una vez.
const (
	CropStatusPlanted   = "Planted"
	CropStatusHarvested = "Harvested"
)

// ConsumedResource es el snapshot de un recurso consumido al sembrar.
// ItemName se denormaliza a propósito: es un registro histórico y no debe
// cambiar aunque el ítem se renombre después.
type ConsumedResource struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`
}

// Crop representa un cultivo con su ciclo de vida siembra/cosecha.
// Nombre único por owner. ActualYield y HarvestedAt son nil hasta la cosecha.
type Crop struct {
	ID             string
	OwnerID        string
	CropName       string
	Variety        string // opcional
	PlantingDate   time.Time
	HarvestingDate time.Time // fecha objetivo de cosecha
	HarvestedAt    *time.Time
	ActualYield    *int64 // >= 0 una vez fijado
	Status         string // Planted | Harvested
	ItemUsed       []ConsumedResource
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Harvestable indica si el cultivo admite la transición a Harvested.
func (c *Crop) Harvestable() bool {
	return c.Status == CropStatusPlanted
}
