package repository

import "github.com/jhoicas/AgriCore-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Category, error)
	ListByOwner(ownerID string) ([]*entity.Category, error)
}
