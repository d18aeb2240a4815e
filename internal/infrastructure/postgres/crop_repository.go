package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// Asegura que CropRepo implementa repository.CropRepository.
var _ repository.CropRepository = (*CropRepo)(nil)

// CropRepo implementación del puerto CropRepository sobre PostgreSQL (usable con pool o tx).
// ItemUsed se guarda como JSONB: es un snapshot histórico, no una relación viva.
type CropRepo struct {
	q Querier
}

// NewCropRepository construye el adaptador de persistencia para cultivos. Pasar pool o tx (Querier).
func NewCropRepository(q Querier) *CropRepo {
	return &CropRepo{q: q}
}

const cropColumns = `id, owner_id, crop_name, variety, planting_date, harvesting_date,
	harvested_at, actual_yield, status, item_used, created_at, updated_at`

// Create persiste un cultivo con su snapshot de recursos consumidos.
func (r *CropRepo) Create(crop *entity.Crop) error {
	itemUsed, err := json.Marshal(crop.ItemUsed)
	if err != nil {
		return fmt.Errorf("marshal item_used: %w", err)
	}
	query := `
		INSERT INTO crops (` + cropColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(context.Background(), query,
		crop.ID, crop.OwnerID, crop.CropName, crop.Variety,
		crop.PlantingDate, crop.HarvestingDate, crop.HarvestedAt,
		crop.ActualYield, crop.Status, itemUsed,
		crop.CreatedAt, crop.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert crop: %w", err)
	}
	return nil
}

// GetByID obtiene un cultivo por ID.
func (r *CropRepo) GetByID(id string) (*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE id = $1`
	crop, err := r.scanCrop(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crop: %w", err)
	}
	return crop, nil
}

// GetByOwnerAndName obtiene un cultivo por owner y nombre.
func (r *CropRepo) GetByOwnerAndName(ownerID, name string) (*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE owner_id = $1 AND crop_name = $2`
	crop, err := r.scanCrop(r.q.QueryRow(context.Background(), query, ownerID, name))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crop by name: %w", err)
	}
	return crop, nil
}

// ListByOwner lista los cultivos del owner, más recientes primero.
func (r *CropRepo) ListByOwner(ownerID string) ([]*entity.Crop, error) {
	query := `SELECT ` + cropColumns + ` FROM crops WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	defer rows.Close()

	var out []*entity.Crop
	for rows.Next() {
		crop, err := r.scanCrop(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crop: %w", err)
		}
		out = append(out, crop)
	}
	return out, rows.Err()
}

// MarkHarvested transiciona Planted -> Harvested con guardia en el WHERE.
// false ⇒ ninguna fila estaba en Planted (ya cosechado o inexistente).
func (r *CropRepo) MarkHarvested(id string, actualYield int64, harvestedAt time.Time) (bool, error) {
	query := `
		UPDATE crops
		SET status = $2, actual_yield = $3, harvested_at = $4, updated_at = now()
		WHERE id = $1 AND status = $5`
	cmd, err := r.q.Exec(context.Background(), query,
		id, entity.CropStatusHarvested, actualYield, harvestedAt, entity.CropStatusPlanted,
	)
	if err != nil {
		return false, fmt.Errorf("mark harvested: %w", err)
	}
	return cmd.RowsAffected() == 1, nil
}

// scanCrop deserializa una fila de crops, incluido el JSONB de item_used.
func (r *CropRepo) scanCrop(row interface{ Scan(dest ...any) error }) (*entity.Crop, error) {
	var c entity.Crop
	var itemUsed []byte
	err := row.Scan(
		&c.ID, &c.OwnerID, &c.CropName, &c.Variety,
		&c.PlantingDate, &c.HarvestingDate, &c.HarvestedAt,
		&c.ActualYield, &c.Status, &itemUsed,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(itemUsed) > 0 {
		if err := json.Unmarshal(itemUsed, &c.ItemUsed); err != nil {
			return nil, fmt.Errorf("unmarshal item_used: %w", err)
		}
	}
	return &c, nil
}
