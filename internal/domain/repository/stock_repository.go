package repository

import "github.com/jhoicas/AgriCore-api/internal/domain/entity"

// StockEntry es una fila del inventario del owner con el ítem resuelto
// (equivalente al populate de getItems en el backend original).
type StockEntry struct {
	Stock *entity.Stock
	Item  *entity.Item
}

// StockRepository define el puerto del libro mayor de stock (DIP).
// Las mutaciones participan en la transacción del caller cuando el repo
// está atado a una tx (patrón TxRunner); no hay commits implícitos.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByItem(itemID, ownerID string) (*entity.Stock, error)

	// Reserve decrementa quantity en amount con un UPDATE condicional
	// evaluado atómicamente en el store: solo si quantity >= amount.
	// Devuelve domain.ErrInsufficientStock si la condición no se cumple.
	Reserve(itemID, ownerID string, amount int64) error

	SetQuantity(itemID, ownerID string, quantity int64) error
	ListByOwner(ownerID string) ([]*StockEntry, error)
	DeleteByItem(itemID, ownerID string) error
}
