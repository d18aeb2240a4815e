package repository

import (
	"time"

	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
)

// CropRepository define el puerto de persistencia para Crop (DIP).
type CropRepository interface {
	Create(crop *entity.Crop) error
	GetByID(id string) (*entity.Crop, error)
	GetByOwnerAndName(ownerID, name string) (*entity.Crop, error)
	ListByOwner(ownerID string) ([]*entity.Crop, error)

	// MarkHarvested ejecuta la transición Planted -> Harvested con un UPDATE
	// condicionado a status = 'Planted'. Devuelve false si no había ninguna
	// fila en estado Planted (cultivo ya cosechado o inexistente), cerrando
	// la carrera entre dos cosechas concurrentes.
	MarkHarvested(id string, actualYield int64, harvestedAt time.Time) (bool, error)
}
