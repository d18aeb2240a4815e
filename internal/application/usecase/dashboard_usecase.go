package usecase

import (
	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del panel: conteos de cultivos por estado
// y los ítems por debajo del umbral de stock.
type DashboardUseCase struct {
	stockRepo repository.StockRepository
	cropRepo  repository.CropRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(stockRepo repository.StockRepository, cropRepo repository.CropRepository) *DashboardUseCase {
	return &DashboardUseCase{stockRepo: stockRepo, cropRepo: cropRepo}
}

// Summary calcula el resumen para el owner. threshold marca el corte de
// stock bajo; <= 0 usa el valor por defecto (10).
func (uc *DashboardUseCase) Summary(ownerID string, threshold int64) (*dto.DashboardResponse, error) {
	if threshold <= 0 {
		threshold = 10
	}
	entries, err := uc.stockRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	crops, err := uc.cropRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		TotalItems: len(entries),
		LowStock:   []dto.LowStockItemDTO{},
	}
	for _, e := range entries {
		if e.Stock.Quantity < threshold {
			resp.LowStock = append(resp.LowStock, dto.LowStockItemDTO{
				ItemID:   e.Item.ID,
				ItemName: e.Item.ItemName,
				Quantity: e.Stock.Quantity,
			})
		}
	}
	for _, c := range crops {
		switch c.Status {
		case entity.CropStatusPlanted:
			resp.CropsPlanted++
		case entity.CropStatusHarvested:
			resp.CropsHarvested++
		}
	}
	return resp, nil
}
