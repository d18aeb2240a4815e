package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías (registro de unidades de medida).
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// AddCategory crea una categoría validando la unidad contra el enum admitido.
// Nombre único por owner.
func (uc *CategoryUseCase) AddCategory(ownerID string, in dto.AddCategoryRequest) (*dto.CategoryResponse, error) {
	if in.CategoryName == "" || in.Unit == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidUnit(in.Unit) {
		return nil, fmt.Errorf("%w: unidad %q no admitida", domain.ErrInvalidInput, in.Unit)
	}
	if existing, err := uc.categoryRepo.GetByOwnerAndName(ownerID, in.CategoryName); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, fmt.Errorf("%w: la categoría %s ya existe", domain.ErrDuplicate, in.CategoryName)
	}
	now := time.Now()
	category := &entity.Category{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		CategoryName: in.CategoryName,
		Unit:         in.Unit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// ListCategories devuelve las categorías del owner (el diálogo de cosecha las necesita).
func (uc *CategoryUseCase) ListCategories(ownerID string) ([]*dto.CategoryResponse, error) {
	categories, err := uc.categoryRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, toCategoryResponse(c))
	}
	return out, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:           c.ID,
		CategoryName: c.CategoryName,
		Unit:         c.Unit,
		CreatedAt:    c.CreatedAt,
	}
}
