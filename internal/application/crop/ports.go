package crop

import (
	"context"

	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la única garantía de atomicidad del
// workflow siembra/cosecha: o se ven todas las escrituras o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		cropRepo repository.CropRepository,
		stockRepo repository.StockRepository,
		itemRepo repository.ItemRepository,
	) error) error
}
