package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// Asegura que StockRepo implementa repository.StockRepository.
var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación del libro mayor de stock sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create persiste un registro de stock nuevo. Nunca fusiona con uno existente:
// la cosecha siempre crea su propio (item, owner).
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (id, item_id, owner_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ItemID, stock.OwnerID, stock.Quantity,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByItem obtiene el registro de stock de un ítem para un owner. nil si no existe.
func (r *StockRepo) GetByItem(itemID, ownerID string) (*entity.Stock, error) {
	query := `
		SELECT id, item_id, owner_id, quantity, created_at, updated_at
		FROM stock WHERE item_id = $1 AND owner_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, itemID, ownerID).Scan(
		&s.ID, &s.ItemID, &s.OwnerID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Reserve decrementa quantity en amount solo si alcanza: la condición
// quantity >= amount se evalúa atómicamente en el UPDATE, no con un par
// leer-comparar-escribir. Dos siembras concurrentes sobre el mismo registro
// no pueden decrementar ambas si solo hay stock para una.
func (r *StockRepo) Reserve(itemID, ownerID string, amount int64) error {
	query := `
		UPDATE stock SET quantity = quantity - $3, updated_at = now()
		WHERE item_id = $1 AND owner_id = $2 AND quantity >= $3`
	cmd, err := r.q.Exec(context.Background(), query, itemID, ownerID, amount)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}

// SetQuantity fija la cantidad absoluta (edición manual del inventario).
func (r *StockRepo) SetQuantity(itemID, ownerID string, quantity int64) error {
	query := `
		UPDATE stock SET quantity = $3, updated_at = now()
		WHERE item_id = $1 AND owner_id = $2`
	cmd, err := r.q.Exec(context.Background(), query, itemID, ownerID, quantity)
	if err != nil {
		return fmt.Errorf("set stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByOwner lista el stock del owner con su ítem resuelto (JOIN).
func (r *StockRepo) ListByOwner(ownerID string) ([]*repository.StockEntry, error) {
	query := `
		SELECT s.id, s.item_id, s.owner_id, s.quantity, s.created_at, s.updated_at,
		       i.id, i.item_name, i.category_id, i.price, i.created_at, i.updated_at
		FROM stock s
		JOIN items i ON i.id = s.item_id
		WHERE s.owner_id = $1
		ORDER BY i.item_name`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()

	var out []*repository.StockEntry
	for rows.Next() {
		var s entity.Stock
		var i entity.Item
		if err := rows.Scan(
			&s.ID, &s.ItemID, &s.OwnerID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
			&i.ID, &i.ItemName, &i.CategoryID, &i.Price, &i.CreatedAt, &i.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		out = append(out, &repository.StockEntry{Stock: &s, Item: &i})
	}
	return out, rows.Err()
}

// DeleteByItem elimina el registro de stock de un ítem para un owner.
func (r *StockRepo) DeleteByItem(itemID, ownerID string) error {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM stock WHERE item_id = $1 AND owner_id = $2`, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
