package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL (usable con pool o tx).
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador de persistencia para recibos. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create persiste la cabecera de un recibo.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	query := `
		INSERT INTO receipts (id, asn_id, receipt_type, status, received_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ASNID, receipt.ReceiptType, receipt.Status,
		receipt.ReceivedBy, receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

// CreateLineItem persiste una línea de recibo.
func (r *ReceiptRepo) CreateLineItem(line *entity.ReceiptLineItem) error {
	query := `
		INSERT INTO receipt_line_items (id, receipt_id, asn_line_item_id, sku, quantity_ordered, quantity_received, quantity_damaged, unit_cost, total_cost, quality_status, putaway_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ReceiptID, line.ASNLineItemID, line.SKU,
		line.QuantityOrdered, line.QuantityReceived, line.QuantityDamaged,
		line.UnitCost, line.TotalCost, line.QualityStatus, line.PutawayStatus,
	)
	if err != nil {
		return fmt.Errorf("insert receipt line item: %w", err)
	}
	return nil
}

const receiptColumns = `id, asn_id, receipt_type, status, received_by, created_at, updated_at`

const receiptLineColumns = `id, receipt_id, asn_line_item_id, sku, quantity_ordered, quantity_received, quantity_damaged, unit_cost, total_cost, quality_status, putaway_status`

// GetByID obtiene la cabecera de un recibo por ID (nil si no existe).
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`
	var rec entity.Receipt
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&rec.ID, &rec.ASNID, &rec.ReceiptType, &rec.Status, &rec.ReceivedBy,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt: %w", err)
	}
	return &rec, nil
}

func scanReceiptLine(row pgx.Row) (*entity.ReceiptLineItem, error) {
	var l entity.ReceiptLineItem
	err := row.Scan(
		&l.ID, &l.ReceiptID, &l.ASNLineItemID, &l.SKU,
		&l.QuantityOrdered, &l.QuantityReceived, &l.QuantityDamaged,
		&l.UnitCost, &l.TotalCost, &l.QualityStatus, &l.PutawayStatus,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// GetLineByID obtiene una línea de recibo por ID (nil si no existe).
func (r *ReceiptRepo) GetLineByID(lineID string) (*entity.ReceiptLineItem, error) {
	query := `SELECT ` + receiptLineColumns + ` FROM receipt_line_items WHERE id = $1`
	line, err := scanReceiptLine(r.q.QueryRow(context.Background(), query, lineID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt line: %w", err)
	}
	return line, nil
}

// ListLineItems lista las líneas de un recibo en orden de inserción.
func (r *ReceiptRepo) ListLineItems(receiptID string) ([]*entity.ReceiptLineItem, error) {
	query := `SELECT ` + receiptLineColumns + ` FROM receipt_line_items WHERE receipt_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ReceiptLineItem
	for rows.Next() {
		line, err := scanReceiptLine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan receipt line item: %w", err)
		}
		list = append(list, line)
	}
	return list, rows.Err()
}

// List lista recibos con filtros opcionales y paginación, más recientes primero.
func (r *ReceiptRepo) List(filters repository.ReceiptFilters, limit, offset int) ([]*entity.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.ASNID != "" {
		query += fmt.Sprintf(" AND asn_id = $%d", pos)
		args = append(args, filters.ASNID)
		pos++
	}
	if filters.ReceiptType != "" {
		query += fmt.Sprintf(" AND receipt_type = $%d", pos)
		args = append(args, filters.ReceiptType)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receipt
	for rows.Next() {
		var rec entity.Receipt
		if err := rows.Scan(&rec.ID, &rec.ASNID, &rec.ReceiptType, &rec.Status,
			&rec.ReceivedBy, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Count cuenta recibos que cumplan los filtros.
func (r *ReceiptRepo) Count(filters repository.ReceiptFilters) (int, error) {
	query := `SELECT COUNT(*) FROM receipts WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.ASNID != "" {
		query += fmt.Sprintf(" AND asn_id = $%d", pos)
		args = append(args, filters.ASNID)
		pos++
	}
	if filters.ReceiptType != "" {
		query += fmt.Sprintf(" AND receipt_type = $%d", pos)
		args = append(args, filters.ReceiptType)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count receipts: %w", err)
	}
	return total, nil
}

// UpdateStatus fija el estado del recibo.
func (r *ReceiptRepo) UpdateStatus(id, status string) error {
	query := `UPDATE receipts SET status = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update receipt status: %w", err)
	}
	return nil
}

// UpdateLinePutawayStatus fija el estado de putaway de una línea de recibo.
func (r *ReceiptRepo) UpdateLinePutawayStatus(lineID, status string) error {
	query := `UPDATE receipt_line_items SET putaway_status = $2 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, lineID, status)
	if err != nil {
		return fmt.Errorf("update receipt line putaway status: %w", err)
	}
	return nil
}

// CountLinesPutawayPending cuenta las líneas del recibo cuyo putaway no está COMPLETED.
func (r *ReceiptRepo) CountLinesPutawayPending(receiptID string) (int, error) {
	query := `SELECT COUNT(*) FROM receipt_line_items WHERE receipt_id = $1 AND putaway_status <> $2`
	var pending int
	err := r.q.QueryRow(context.Background(), query, receiptID, entity.LinePutawayCompleted).Scan(&pending)
	if err != nil {
		return 0, fmt.Errorf("count pending putaway lines: %w", err)
	}
	return pending, nil
}
