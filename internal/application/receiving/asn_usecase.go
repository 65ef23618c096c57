package receiving

import (
	"context"
	"time"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/pkg/ident"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
)

// ASNUseCase casos de uso sobre avisos anticipados de embarque: alta
// transaccional (cabecera + líneas), consulta y cambio de estado.
type ASNUseCase struct {
	txRunner TxRunner
	asnRepo  repository.ASNRepository
	ident    ident.Generator
	log      *logger.Logger
}

// NewASNUseCase construye el caso de uso.
func NewASNUseCase(txRunner TxRunner, asnRepo repository.ASNRepository, gen ident.Generator, log *logger.Logger) *ASNUseCase {
	return &ASNUseCase{txRunner: txRunner, asnRepo: asnRepo, ident: gen, log: log}
}

// Create inserta el ASN y todas sus líneas en una sola transacción. Si
// cualquier inserción falla se revierte todo y no queda un ASN parcial.
func (uc *ASNUseCase) Create(ctx context.Context, createdBy string, in dto.CreateASNRequest) (*dto.ASNResponse, error) {
	if in.SupplierID == "" || in.PurchaseOrderNumber == "" || len(in.LineItems) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.LineItems {
		if l.SKU == "" || !l.ExpectedQuantity.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	asn := &entity.ASN{
		ID:                  uc.ident.NewID(ident.KindASN),
		SupplierID:          in.SupplierID,
		PurchaseOrderNumber: in.PurchaseOrderNumber,
		Status:              entity.ASNStatusPending,
		ExpectedArrivalDate: in.ExpectedArrivalDate,
		Carrier:             in.Carrier,
		TrackingNumber:      in.TrackingNumber,
		CreatedBy:           createdBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, l := range in.LineItems {
		asn.LineItems = append(asn.LineItems, &entity.ASNLineItem{
			ID:               uc.ident.NewID(ident.KindASNLine),
			ASNID:            asn.ID,
			SKU:              l.SKU,
			ExpectedQuantity: l.ExpectedQuantity,
			UnitCost:         l.UnitCost,
			LotNumber:        l.LotNumber,
			ExpirationDate:   l.ExpirationDate,
			ReceivingStatus:  entity.ASNLinePending,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		asnRepo repository.ASNRepository,
		_ repository.ReceiptRepository,
		_ repository.PutawayTaskRepository,
		_ repository.BinLocationRepository,
	) error {
		if err := asnRepo.Create(asn); err != nil {
			return err
		}
		for _, line := range asn.LineItems {
			if err := asnRepo.CreateLineItem(line); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("asn_id", asn.ID).Msg("crear ASN")
		return nil, err
	}

	uc.log.Info().Str("asn_id", asn.ID).Int("lines", len(asn.LineItems)).Msg("ASN creado")
	return toASNResponse(asn), nil
}

// GetByID obtiene un ASN con sus líneas; NotFound si no existe.
func (uc *ASNUseCase) GetByID(ctx context.Context, id string) (*dto.ASNResponse, error) {
	asn, err := uc.asnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asn == nil {
		return nil, domain.NewNotFound("ASN", id)
	}
	lines, err := uc.asnRepo.ListLineItems(id)
	if err != nil {
		return nil, err
	}
	asn.LineItems = lines
	return toASNResponse(asn), nil
}

// List lista ASNs con filtros y paginación; cada ASN sale hidratado con sus líneas.
func (uc *ASNUseCase) List(ctx context.Context, filters repository.ASNFilters, limit, offset int) (*dto.ASNListResponse, error) {
	list, err := uc.asnRepo.List(filters, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.asnRepo.Count(filters)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ASNResponse, 0, len(list))
	for _, asn := range list {
		lines, err := uc.asnRepo.ListLineItems(asn.ID)
		if err != nil {
			return nil, err
		}
		asn.LineItems = lines
		items = append(items, *toASNResponse(asn))
	}
	return &dto.ASNListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// UpdateStatus fija el estado del ASN sin validar transiciones (cualquier
// estado puede pasar a cualquier otro). Al pasar a RECEIVED se estampa la
// fecha real de llegada si aún no existe. NotFound si el ASN no existe.
func (uc *ASNUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.ASNResponse, error) {
	if !entity.ValidASNStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	asn, err := uc.asnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if asn == nil {
		return nil, domain.NewNotFound("ASN", id)
	}

	var actualArrival *time.Time
	if status == entity.ASNStatusReceived && asn.ActualArrivalDate == nil {
		now := time.Now()
		actualArrival = &now
	}
	if err := uc.asnRepo.UpdateStatus(id, status, actualArrival); err != nil {
		uc.log.Error().Err(err).Str("asn_id", id).Str("status", status).Msg("actualizar estado ASN")
		return nil, err
	}

	uc.log.Info().Str("asn_id", id).Str("from", asn.Status).Str("to", status).Msg("estado de ASN actualizado")
	return uc.GetByID(ctx, id)
}

func toASNResponse(a *entity.ASN) *dto.ASNResponse {
	if a == nil {
		return nil
	}
	resp := &dto.ASNResponse{
		ID:                  a.ID,
		SupplierID:          a.SupplierID,
		PurchaseOrderNumber: a.PurchaseOrderNumber,
		Status:              a.Status,
		ExpectedArrivalDate: a.ExpectedArrivalDate,
		ActualArrivalDate:   a.ActualArrivalDate,
		Carrier:             a.Carrier,
		TrackingNumber:      a.TrackingNumber,
		CreatedBy:           a.CreatedBy,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		LineItems:           make([]dto.ASNLineItemResponse, 0, len(a.LineItems)),
	}
	for _, l := range a.LineItems {
		resp.LineItems = append(resp.LineItems, dto.ASNLineItemResponse{
			ID:               l.ID,
			SKU:              l.SKU,
			ExpectedQuantity: l.ExpectedQuantity,
			ReceivedQuantity: l.ReceivedQuantity,
			UnitCost:         l.UnitCost,
			LotNumber:        l.LotNumber,
			ExpirationDate:   l.ExpirationDate,
			ReceivingStatus:  l.ReceivingStatus,
		})
	}
	return resp
}
