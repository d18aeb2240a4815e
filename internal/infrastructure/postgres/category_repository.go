package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// Asegura que CategoryRepo implementa repository.CategoryRepository.
var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, owner_id, category_name, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.OwnerID, category.CategoryName, category.Unit,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	query := `
		SELECT id, owner_id, category_name, unit, created_at, updated_at
		FROM categories WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.OwnerID, &c.CategoryName, &c.Unit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// GetByOwnerAndName obtiene una categoría por owner y nombre.
func (r *CategoryRepo) GetByOwnerAndName(ownerID, name string) (*entity.Category, error) {
	query := `
		SELECT id, owner_id, category_name, unit, created_at, updated_at
		FROM categories WHERE owner_id = $1 AND category_name = $2`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, ownerID, name).Scan(
		&c.ID, &c.OwnerID, &c.CategoryName, &c.Unit, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// ListByOwner lista las categorías del owner ordenadas por nombre.
func (r *CategoryRepo) ListByOwner(ownerID string) ([]*entity.Category, error) {
	query := `
		SELECT id, owner_id, category_name, unit, created_at, updated_at
		FROM categories WHERE owner_id = $1 ORDER BY category_name`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.CategoryName, &c.Unit, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}
