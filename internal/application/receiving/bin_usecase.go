package receiving

import (
	"context"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
)

// BinUseCase administra el registro SKU → ubicaciones. El orden (position)
// determina qué ubicación recibe las tareas de putaway: siempre la primera.
type BinUseCase struct {
	binRepo repository.BinLocationRepository
	log     *logger.Logger
}

// NewBinUseCase construye el caso de uso.
func NewBinUseCase(binRepo repository.BinLocationRepository, log *logger.Logger) *BinUseCase {
	return &BinUseCase{binRepo: binRepo, log: log}
}

// Create registra una ubicación para un SKU.
func (uc *BinUseCase) Create(ctx context.Context, req *dto.CreateBinLocationRequest) (*dto.BinLocationResponse, error) {
	if req.SKU == "" || req.BinCode == "" {
		return nil, domain.ErrInvalidInput
	}
	bin := &entity.BinLocation{
		SKU:      req.SKU,
		BinCode:  req.BinCode,
		Position: req.Position,
	}
	if err := uc.binRepo.Create(bin); err != nil {
		return nil, err
	}

	uc.log.Info().Str("sku", bin.SKU).Str("bin_code", bin.BinCode).Msg("ubicación registrada")
	return &dto.BinLocationResponse{SKU: bin.SKU, BinCode: bin.BinCode, Position: bin.Position}, nil
}

// ListBySKU lista las ubicaciones de un SKU en orden de preferencia.
func (uc *BinUseCase) ListBySKU(ctx context.Context, sku string) ([]dto.BinLocationResponse, error) {
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	bins, err := uc.binRepo.ListBySKU(sku)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BinLocationResponse, 0, len(bins))
	for _, b := range bins {
		out = append(out, dto.BinLocationResponse{SKU: b.SKU, BinCode: b.BinCode, Position: b.Position})
	}
	return out, nil
}
