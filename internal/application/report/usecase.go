package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
	"github.com/jhoicas/AgriCore-api/internal/domain/repository"
)

// CropReportGenerator puerto de generación del PDF de resumen de cultivos.
type CropReportGenerator interface {
	GenerateCropReport(ctx context.Context, owner *entity.User, crops []*entity.Crop) ([]byte, error)
}

// CropReportUseCase arma el reporte PDF de cultivos del owner
// (contraparte servidor del CropSummary del frontend).
type CropReportUseCase struct {
	cropRepo  repository.CropRepository
	userRepo  repository.UserRepository
	generator CropReportGenerator
}

// NewCropReportUseCase construye el caso de uso.
func NewCropReportUseCase(cropRepo repository.CropRepository, userRepo repository.UserRepository, generator CropReportGenerator) *CropReportUseCase {
	return &CropReportUseCase{cropRepo: cropRepo, userRepo: userRepo, generator: generator}
}

// Generate devuelve los bytes del PDF con todos los cultivos del owner.
func (uc *CropReportUseCase) Generate(ctx context.Context, ownerID string) ([]byte, error) {
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, fmt.Errorf("%w: usuario %s", domain.ErrNotFound, ownerID)
	}
	crops, err := uc.cropRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCropReport(ctx, owner, crops)
}
