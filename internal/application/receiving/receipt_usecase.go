package receiving

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	domreceiving "github.com/jhoicas/Recepcion-api/internal/domain/receiving"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
	"github.com/jhoicas/Recepcion-api/pkg/ident"
	"github.com/jhoicas/Recepcion-api/pkg/logger"
)

// ReceiptUseCase registra recepciones físicas de mercancía. La creación es la
// operación transaccional central del pipeline: recibo, líneas y tareas de
// putaway nacen en una sola transacción, o no nace nada. Un recibo sin ruta
// de putaway es mercancía en el muelle sin directiva de destino.
type ReceiptUseCase struct {
	txRunner    TxRunner
	receiptRepo repository.ReceiptRepository
	ident       ident.Generator
	log         *logger.Logger
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(txRunner TxRunner, receiptRepo repository.ReceiptRepository, gen ident.Generator, log *logger.Logger) *ReceiptUseCase {
	return &ReceiptUseCase{txRunner: txRunner, receiptRepo: receiptRepo, ident: gen, log: log}
}

// Create inserta el recibo, sus líneas y una tarea de putaway por línea en
// una sola transacción. Postea cantidades contra las líneas del ASN
// referenciadas (con bloqueo de fila) y cierra el ASN cuando todas sus líneas
// quedan COMPLETE. Cualquier fallo (incluido "SKU not found" al generar
// tareas) revierte la transacción completa.
func (uc *ReceiptUseCase) Create(ctx context.Context, receivedBy string, in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	if !entity.ValidReceiptType(in.ReceiptType) || len(in.LineItems) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, l := range in.LineItems {
		if l.SKU == "" || !l.QuantityReceived.IsPositive() || l.QuantityDamaged.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	receipt := &entity.Receipt{
		ID:          uc.ident.NewID(ident.KindReceipt),
		ASNID:       in.ASNID,
		ReceiptType: in.ReceiptType,
		Status:      entity.ReceiptStatusReceiving,
		ReceivedBy:  receivedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		asnRepo repository.ASNRepository,
		receiptRepo repository.ReceiptRepository,
		taskRepo repository.PutawayTaskRepository,
		binRepo repository.BinLocationRepository,
	) error {
		if in.ASNID != nil {
			asn, err := asnRepo.GetByID(*in.ASNID)
			if err != nil {
				return err
			}
			if asn == nil {
				return domain.NewNotFound("ASN", *in.ASNID)
			}
		}
		if err := receiptRepo.Create(receipt); err != nil {
			return err
		}
		for _, l := range in.LineItems {
			line := &entity.ReceiptLineItem{
				ID:               uc.ident.NewID(ident.KindReceiptLine),
				ReceiptID:        receipt.ID,
				ASNLineItemID:    l.ASNLineItemID,
				SKU:              l.SKU,
				QuantityOrdered:  l.QuantityOrdered,
				QuantityReceived: l.QuantityReceived,
				QuantityDamaged:  l.QuantityDamaged,
				UnitCost:         l.UnitCost,
				TotalCost:        domreceiving.LineTotalCost(l.QuantityReceived, l.UnitCost),
				QualityStatus:    entity.QualityPending,
				PutawayStatus:    entity.LinePutawayPending,
			}
			if err := receiptRepo.CreateLineItem(line); err != nil {
				return err
			}
			if l.ASNLineItemID != nil {
				if err := uc.postToASNLine(asnRepo, *l.ASNLineItemID, l.QuantityReceived); err != nil {
					return err
				}
			}
			if err := uc.createPutawayTasksForReceiptLine(taskRepo, binRepo, line, now); err != nil {
				return err
			}
		}
		if in.ASNID != nil {
			if err := uc.rollUpASN(asnRepo, *in.ASNID, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("receipt_id", receipt.ID).Msg("crear recibo: rollback")
		return nil, err
	}

	uc.log.Info().Str("receipt_id", receipt.ID).Int("lines", len(in.LineItems)).Msg("recibo creado con tareas de putaway")
	return uc.GetByID(ctx, receipt.ID)
}

// createPutawayTasksForReceiptLine asigna la primera ubicación registrada del
// SKU y crea una tarea con la cantidad recibida de la línea. SKU sin
// ubicaciones registradas = NotFound, que aborta la transacción del recibo.
// La cantidad a guardar es la recibida completa, sin restar lo dañado.
func (uc *ReceiptUseCase) createPutawayTasksForReceiptLine(
	taskRepo repository.PutawayTaskRepository,
	binRepo repository.BinLocationRepository,
	line *entity.ReceiptLineItem,
	now time.Time,
) error {
	bins, err := binRepo.ListBySKU(line.SKU)
	if err != nil {
		return err
	}
	if len(bins) == 0 {
		return domain.NewNotFound("SKU", line.SKU)
	}
	task := &entity.PutawayTask{
		ID:                uc.ident.NewID(ident.KindPutawayTask),
		ReceiptLineID:     line.ID,
		SKU:               line.SKU,
		QuantityToPutaway: line.QuantityReceived,
		TargetBinLocation: bins[0].BinCode,
		Status:            entity.PutawayTaskPending,
		Priority:          entity.DefaultPutawayPriority,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return taskRepo.Create(task)
}

// postToASNLine acumula la cantidad recibida sobre la línea del ASN, con
// bloqueo de fila para serializar recibos parciales concurrentes.
func (uc *ReceiptUseCase) postToASNLine(asnRepo repository.ASNRepository, asnLineID string, qty decimal.Decimal) error {
	asnLine, err := asnRepo.GetLineItemForUpdate(asnLineID)
	if err != nil {
		return err
	}
	if asnLine == nil {
		return domain.NewNotFound("ASN line item", asnLineID)
	}
	asnLine.ReceivedQuantity = asnLine.ReceivedQuantity.Add(qty)
	asnLine.ReceivingStatus = domreceiving.LineReceivingStatus(asnLine.ExpectedQuantity, asnLine.ReceivedQuantity)
	return asnRepo.UpdateLineItemReceiving(asnLine)
}

// rollUpASN marca el ASN como RECEIVED cuando todas sus líneas están COMPLETE.
func (uc *ReceiptUseCase) rollUpASN(asnRepo repository.ASNRepository, asnID string, now time.Time) error {
	lines, err := asnRepo.ListLineItems(asnID)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if l.ReceivingStatus != entity.ASNLineComplete {
			return nil
		}
	}
	return asnRepo.UpdateStatus(asnID, entity.ASNStatusReceived, &now)
}

// GetByID obtiene un recibo con sus líneas; NotFound si no existe.
func (uc *ReceiptUseCase) GetByID(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	receipt, err := uc.receiptRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, domain.NewNotFound("Receipt", id)
	}
	lines, err := uc.receiptRepo.ListLineItems(id)
	if err != nil {
		return nil, err
	}
	receipt.LineItems = lines
	return toReceiptResponse(receipt), nil
}

// List lista recibos con filtros y paginación; cada recibo sale con sus líneas.
func (uc *ReceiptUseCase) List(ctx context.Context, filters repository.ReceiptFilters, limit, offset int) (*dto.ReceiptListResponse, error) {
	list, err := uc.receiptRepo.List(filters, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := uc.receiptRepo.Count(filters)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReceiptResponse, 0, len(list))
	for _, receipt := range list {
		lines, err := uc.receiptRepo.ListLineItems(receipt.ID)
		if err != nil {
			return nil, err
		}
		receipt.LineItems = lines
		items = append(items, *toReceiptResponse(receipt))
	}
	return &dto.ReceiptListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

func toReceiptResponse(r *entity.Receipt) *dto.ReceiptResponse {
	if r == nil {
		return nil
	}
	resp := &dto.ReceiptResponse{
		ID:          r.ID,
		ASNID:       r.ASNID,
		ReceiptType: r.ReceiptType,
		Status:      r.Status,
		ReceivedBy:  r.ReceivedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		LineItems:   make([]dto.ReceiptLineItemResponse, 0, len(r.LineItems)),
	}
	for _, l := range r.LineItems {
		resp.LineItems = append(resp.LineItems, dto.ReceiptLineItemResponse{
			ID:               l.ID,
			ASNLineItemID:    l.ASNLineItemID,
			SKU:              l.SKU,
			QuantityOrdered:  l.QuantityOrdered,
			QuantityReceived: l.QuantityReceived,
			QuantityDamaged:  l.QuantityDamaged,
			UnitCost:         l.UnitCost,
			TotalCost:        l.TotalCost,
			QualityStatus:    l.QualityStatus,
			PutawayStatus:    l.PutawayStatus,
		})
	}
	return resp
}
