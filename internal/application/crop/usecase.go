package crop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// LifecycleUseCase orquesta las dos transiciones con efectos sobre el stock:
// sembrar (consume inventario) y cosechar (produce inventario nuevo).
// Toda mutación multi-documento pasa por el TxRunner con Commit/Rollback.
type LifecycleUseCase struct {
	txRunner     TxRunner
	cropRepo     repository.CropRepository
	stockRepo    repository.StockRepository
	itemRepo     repository.ItemRepository
	categoryRepo repository.CategoryRepository
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	txRunner TxRunner,
	cropRepo repository.CropRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
	categoryRepo repository.CategoryRepository,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:     txRunner,
		cropRepo:     cropRepo,
		stockRepo:    stockRepo,
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
	}
}

// PlantCrop crea un cultivo consumiendo recursos del stock.
//
// La validación pre-vuelo (campos, fechas y suficiencia de TODOS los recursos)
// ocurre antes de abrir la transacción: una petición parcialmente satisfacible
// se rechaza completa y sin efectos. Dentro de la tx, cada decremento usa
// Reserve (condicional en el store), así que si otra siembra concurrente ganó
// la carrera después del pre-vuelo, el decremento falla y todo se revierte.
func (uc *LifecycleUseCase) PlantCrop(ctx context.Context, ownerID string, in dto.PlantCropRequest) (*dto.CropResponse, error) {
	if ownerID == "" || in.CropName == "" || in.PlantingDate.IsZero() || in.HarvestingDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if in.HarvestingDate.Before(in.PlantingDate) {
		return nil, fmt.Errorf("%w: la fecha de cosecha es anterior a la de siembra", domain.ErrInvalidInput)
	}
	if in.PlantingDate.After(time.Now()) {
		return nil, fmt.Errorf("%w: la fecha de siembra no puede ser futura", domain.ErrInvalidInput)
	}
	for _, u := range in.UsedItems {
		if u.ItemID == "" || u.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cada recurso requiere itemId y cantidad positiva", domain.ErrInvalidInput)
		}
	}

	if existing, err := uc.cropRepo.GetByOwnerAndName(ownerID, in.CropName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: ya existe un cultivo llamado %s", domain.ErrDuplicate, in.CropName)
	}

	// Pre-vuelo: resolver cada recurso y verificar suficiencia antes de mutar.
	// El snapshot de itemName se toma aquí (registro histórico).
	consumed := make([]entity.ConsumedResource, 0, len(in.UsedItems))
	for _, u := range in.UsedItems {
		item, err := uc.itemRepo.GetByID(u.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, u.ItemID)
		}
		stock, err := uc.stockRepo.GetByItem(u.ItemID, ownerID)
		if err != nil {
			return nil, err
		}
		if stock == nil {
			return nil, fmt.Errorf("%w: sin stock para %s", domain.ErrNotFound, item.ItemName)
		}
		if stock.Quantity < u.Quantity {
			return nil, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, item.ItemName)
		}
		consumed = append(consumed, entity.ConsumedResource{
			ItemID:   u.ItemID,
			ItemName: item.ItemName,
			Quantity: u.Quantity,
		})
	}

	now := time.Now()
	crop := &entity.Crop{
		ID:             uuid.New().String(),
		OwnerID:        ownerID,
		CropName:       in.CropName,
		Variety:        in.Variety,
		PlantingDate:   in.PlantingDate,
		HarvestingDate: in.HarvestingDate,
		Status:         entity.CropStatusPlanted,
		ItemUsed:       consumed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := uc.txRunner.Run(ctx, func(
		cropRepo repository.CropRepository,
		stockRepo repository.StockRepository,
		_ repository.ItemRepository,
	) error {
		if err := cropRepo.Create(crop); err != nil {
			return err
		}
		for _, c := range crop.ItemUsed {
			if err := stockRepo.Reserve(c.ItemID, ownerID, c.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					return fmt.Errorf("%w: %s", domain.ErrInsufficientStock, c.ItemName)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCropResponse(crop), nil
}

// HarvestCrop cierra el ciclo de vida de un cultivo: Planted -> Harvested,
// una sola vez, creando el ítem cosechado y su stock en la misma transacción.
func (uc *LifecycleUseCase) HarvestCrop(ctx context.Context, ownerID, cropID string, in dto.HarvestCropRequest) (*dto.CropResponse, error) {
	if ownerID == "" || cropID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ActualYield < 0 {
		return nil, fmt.Errorf("%w: el rendimiento no puede ser negativo", domain.ErrInvalidInput)
	}
	if !in.Price.GreaterThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.Category == "" {
		return nil, fmt.Errorf("%w: la categoría es requerida", domain.ErrInvalidInput)
	}

	crop, err := uc.cropRepo.GetByID(cropID)
	if err != nil {
		return nil, err
	}
	if crop == nil || crop.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: cultivo %s", domain.ErrNotFound, cropID)
	}
	if !crop.Harvestable() {
		return nil, domain.ErrAlreadyHarvested
	}

	category, err := uc.categoryRepo.GetByID(in.Category)
	if err != nil {
		return nil, err
	}
	if category == nil || category.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, in.Category)
	}

	harvestedAt := time.Now()
	if in.HarvestedAt != nil {
		harvestedAt = *in.HarvestedAt
	}

	newItem := &entity.Item{
		ID:         uuid.New().String(),
		ItemName:   crop.CropName,
		CategoryID: category.ID,
		Price:      in.Price,
		CreatedAt:  harvestedAt,
		UpdatedAt:  harvestedAt,
	}
	newStock := &entity.Stock{
		ID:        uuid.New().String(),
		ItemID:    newItem.ID,
		OwnerID:   ownerID,
		Quantity:  in.ActualYield,
		CreatedAt: harvestedAt,
		UpdatedAt: harvestedAt,
	}

	err = uc.txRunner.Run(ctx, func(
		cropRepo repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// El UPDATE condicionado a status='Planted' es la guardia real:
		// el chequeo Harvestable de arriba puede quedar obsoleto bajo carrera.
		ok, err := cropRepo.MarkHarvested(crop.ID, in.ActualYield, harvestedAt)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrAlreadyHarvested
		}
		if err := itemRepo.Create(newItem); err != nil {
			return err
		}
		return stockRepo.Create(newStock)
	})
	if err != nil {
		return nil, err
	}

	yield := in.ActualYield
	crop.Status = entity.CropStatusHarvested
	crop.ActualYield = &yield
	crop.HarvestedAt = &harvestedAt
	crop.UpdatedAt = harvestedAt
	return toCropResponse(crop), nil
}

// ListCrops devuelve los cultivos del owner.
func (uc *LifecycleUseCase) ListCrops(_ context.Context, ownerID string) ([]*dto.CropResponse, error) {
	crops, err := uc.cropRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CropResponse, 0, len(crops))
	for _, c := range crops {
		out = append(out, toCropResponse(c))
	}
	return out, nil
}

func toCropResponse(c *entity.Crop) *dto.CropResponse {
	used := make([]dto.ConsumedResourceDTO, 0, len(c.ItemUsed))
	for _, r := range c.ItemUsed {
		used = append(used, dto.ConsumedResourceDTO{
			ItemID:   r.ItemID,
			ItemName: r.ItemName,
			Quantity: r.Quantity,
		})
	}
	return &dto.CropResponse{
		ID:             c.ID,
		CropName:       c.CropName,
		Variety:        c.Variety,
		PlantingDate:   c.PlantingDate,
		HarvestingDate: c.HarvestingDate,
		HarvestedAt:    c.HarvestedAt,
		ActualYield:    c.ActualYield,
		Status:         c.Status,
		ItemUsed:       used,
		CreatedAt:      c.CreatedAt,
	}
}
