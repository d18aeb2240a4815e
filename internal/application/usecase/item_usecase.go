package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// InventoryTxRunner ejecuta una función dentro de una transacción de BD.
// Misma firma que crop.TxRunner; el adaptador postgres satisface ambas.
type InventoryTxRunner interface {
	Run(ctx context.Context, fn func(
		cropRepo repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

// ItemUseCase CRUD de ítems del catálogo. Ítem y su registro de stock nacen,
// se actualizan y mueren juntos, siempre dentro de una transacción.
type ItemUseCase struct {
	txRunner     InventoryTxRunner
	itemRepo     repository.ItemRepository
	stockRepo    repository.StockRepository
	categoryRepo repository.CategoryRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner InventoryTxRunner,
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	categoryRepo repository.CategoryRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		stockRepo:    stockRepo,
		categoryRepo: categoryRepo,
	}
}

// AddItem crea Item + Stock inicial en una transacción.
func (uc *ItemUseCase) AddItem(ctx context.Context, ownerID string, in dto.AddItemRequest) (*dto.ItemResponse, error) {
	if in.ItemName == "" || in.CategoryID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: cantidad y precio no pueden ser negativos", domain.ErrInvalidInput)
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil || category.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: categoría %s", domain.ErrNotFound, in.CategoryID)
	}

	now := time.Now()
	item := &entity.Item{
		ID:         uuid.New().String(),
		ItemName:   in.ItemName,
		CategoryID: category.ID,
		Price:      in.Price,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	stock := &entity.Stock{
		ID:        uuid.New().String(),
		ItemID:    item.ID,
		OwnerID:   ownerID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		return stockRepo.Create(stock)
	})
	if err != nil {
		return nil, err
	}

	return &dto.ItemResponse{
		ItemID:     item.ID,
		StockID:    stock.ID,
		ItemName:   item.ItemName,
		CategoryID: item.CategoryID,
		Price:      item.Price,
		Quantity:   stock.Quantity,
	}, nil
}

// GetItems lista el inventario del owner (stock con ítem resuelto).
func (uc *ItemUseCase) GetItems(ownerID string) ([]*dto.ItemResponse, error) {
	entries, err := uc.stockRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ItemResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.ItemResponse{
			ItemID:     e.Item.ID,
			StockID:    e.Stock.ID,
			ItemName:   e.Item.ItemName,
			CategoryID: e.Item.CategoryID,
			Price:      e.Item.Price,
			Quantity:   e.Stock.Quantity,
		})
	}
	return out, nil
}

// UpdateItem actualiza nombre/precio del ítem y opcionalmente fija la
// cantidad del stock, todo en la misma transacción.
func (uc *ItemUseCase) UpdateItem(ctx context.Context, ownerID, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity != nil && *in.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	if in.Price != nil && in.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	stock, err := uc.stockRepo.GetByItem(itemID, ownerID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: sin stock para el ítem %s", domain.ErrNotFound, itemID)
	}
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: ítem %s", domain.ErrNotFound, itemID)
	}

	if in.ItemName != nil {
		item.ItemName = *in.ItemName
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	item.UpdatedAt = time.Now()

	err = uc.txRunner.Run(ctx, func(
		_ repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		if in.ItemName != nil || in.Price != nil {
			if err := itemRepo.Update(item); err != nil {
				return err
			}
		}
		if in.Quantity != nil {
			if err := stockRepo.SetQuantity(itemID, ownerID, *in.Quantity); err != nil {
				return err
			}
			stock.Quantity = *in.Quantity
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.ItemResponse{
		ItemID:     item.ID,
		StockID:    stock.ID,
		ItemName:   item.ItemName,
		CategoryID: item.CategoryID,
		Price:      item.Price,
		Quantity:   stock.Quantity,
	}, nil
}

// DeleteItem elimina Item + Stock en una transacción.
func (uc *ItemUseCase) DeleteItem(ctx context.Context, ownerID, itemID string) error {
	stock, err := uc.stockRepo.GetByItem(itemID, ownerID)
	if err != nil {
		return err
	}
	if stock == nil {
		return fmt.Errorf("%w: sin stock para el ítem %s", domain.ErrNotFound, itemID)
	}
	return uc.txRunner.Run(ctx, func(
		_ repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error {
		// El stock referencia al ítem por FK: se elimina primero el stock
		// y después el ítem, en ese orden.
		if err := stockRepo.DeleteByItem(itemID, ownerID); err != nil {
			return err
		}
		return itemRepo.Delete(itemID)
	})
}
