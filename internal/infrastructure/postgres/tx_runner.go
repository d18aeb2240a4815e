package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/AgriCore-api/internal/application/crop"
	"github.com/jhoicas/AgriCore-api/internal/application/usecase"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// Ensure TxRunner implements crop.TxRunner and usecase.InventoryTxRunner.
var _ crop.TxRunner = (*TxRunner)(nil)
var _ usecase.InventoryTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. El Rollback diferido cubre toda salida: error de fn,
// error de Commit o panic; tras un Commit exitoso es un no-op.
func (r *TxRunner) Run(ctx context.Context, fn func(
	cropRepo repository.CropRepository,
	stockRepo repository.StockRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	cropRepo := NewCropRepository(tx)
	stockRepo := NewStockRepository(tx)
	itemRepo := NewItemRepository(tx)

	if err := fn(cropRepo, stockRepo, itemRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
