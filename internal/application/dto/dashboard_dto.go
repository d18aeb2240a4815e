package dto

// LowStockItemDTO un ítem por debajo del umbral de stock.
type LowStockItemDTO struct {
	ItemID   string `json:"itemId"`
	ItemName string `json:"itemName"`
	Quantity int64  `json:"quantity"`
}

// DashboardResponse resumen para el panel del frontend.
type DashboardResponse struct {
	TotalItems     int               `json:"totalItems"`
	CropsPlanted   int               `json:"cropsPlanted"`
	CropsHarvested int               `json:"cropsHarvested"`
	LowStock       []LowStockItemDTO `json:"lowStock"`
}
