package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.ASNRepository = (*ASNRepo)(nil)

// ASNRepo implementación del puerto ASNRepository sobre PostgreSQL (usable con pool o tx).
type ASNRepo struct {
	q Querier
}

// NewASNRepository construye el adaptador de persistencia para ASNs. Pasar pool o tx (Querier).
func NewASNRepository(q Querier) *ASNRepo {
	return &ASNRepo{q: q}
}

// Create persiste la cabecera de un ASN.
func (r *ASNRepo) Create(asn *entity.ASN) error {
	query := `
		INSERT INTO asns (id, supplier_id, purchase_order_number, status, expected_arrival_date, actual_arrival_date, carrier, tracking_number, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		asn.ID, asn.SupplierID, asn.PurchaseOrderNumber, asn.Status,
		asn.ExpectedArrivalDate, asn.ActualArrivalDate, asn.Carrier, asn.TrackingNumber,
		asn.CreatedBy, asn.CreatedAt, asn.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert asn: %w", err)
	}
	return nil
}

// CreateLineItem persiste una línea de ASN.
func (r *ASNRepo) CreateLineItem(line *entity.ASNLineItem) error {
	query := `
		INSERT INTO asn_line_items (id, asn_id, sku, expected_quantity, received_quantity, unit_cost, lot_number, expiration_date, receiving_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		line.ID, line.ASNID, line.SKU, line.ExpectedQuantity, line.ReceivedQuantity,
		line.UnitCost, line.LotNumber, line.ExpirationDate, line.ReceivingStatus,
	)
	if err != nil {
		return fmt.Errorf("insert asn line item: %w", err)
	}
	return nil
}

const asnColumns = `id, supplier_id, purchase_order_number, status, expected_arrival_date, actual_arrival_date, carrier, tracking_number, created_by, created_at, updated_at`

func scanASN(row pgx.Row) (*entity.ASN, error) {
	var a entity.ASN
	err := row.Scan(
		&a.ID, &a.SupplierID, &a.PurchaseOrderNumber, &a.Status,
		&a.ExpectedArrivalDate, &a.ActualArrivalDate, &a.Carrier, &a.TrackingNumber,
		&a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByID obtiene la cabecera de un ASN por ID (nil si no existe).
func (r *ASNRepo) GetByID(id string) (*entity.ASN, error) {
	query := `SELECT ` + asnColumns + ` FROM asns WHERE id = $1`
	asn, err := scanASN(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asn: %w", err)
	}
	return asn, nil
}

// ListLineItems lista las líneas de un ASN en orden de inserción.
func (r *ASNRepo) ListLineItems(asnID string) ([]*entity.ASNLineItem, error) {
	query := `
		SELECT id, asn_id, sku, expected_quantity, received_quantity, unit_cost, lot_number, expiration_date, receiving_status
		FROM asn_line_items WHERE asn_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, asnID)
	if err != nil {
		return nil, fmt.Errorf("list asn line items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ASNLineItem
	for rows.Next() {
		var l entity.ASNLineItem
		if err := rows.Scan(&l.ID, &l.ASNID, &l.SKU, &l.ExpectedQuantity, &l.ReceivedQuantity,
			&l.UnitCost, &l.LotNumber, &l.ExpirationDate, &l.ReceivingStatus); err != nil {
			return nil, fmt.Errorf("scan asn line item: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// List lista ASNs con filtros opcionales y paginación, más recientes primero.
func (r *ASNRepo) List(filters repository.ASNFilters, limit, offset int) ([]*entity.ASN, error) {
	query := `SELECT ` + asnColumns + ` FROM asns WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", pos)
		args = append(args, filters.SupplierID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list asns: %w", err)
	}
	defer rows.Close()
	var list []*entity.ASN
	for rows.Next() {
		asn, err := scanASN(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asn: %w", err)
		}
		list = append(list, asn)
	}
	return list, rows.Err()
}

// Count cuenta ASNs que cumplan los filtros.
func (r *ASNRepo) Count(filters repository.ASNFilters) (int, error) {
	query := `SELECT COUNT(*) FROM asns WHERE 1=1`
	args := []any{}
	pos := 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.SupplierID != "" {
		query += fmt.Sprintf(" AND supplier_id = $%d", pos)
		args = append(args, filters.SupplierID)
	}
	var total int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count asns: %w", err)
	}
	return total, nil
}

// UpdateStatus fija el estado del ASN; si actualArrival no es nil también
// estampa actual_arrival_date.
func (r *ASNRepo) UpdateStatus(id, status string, actualArrival *time.Time) error {
	query := `
		UPDATE asns SET status = $2,
			actual_arrival_date = COALESCE($3, actual_arrival_date),
			updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, status, actualArrival)
	if err != nil {
		return fmt.Errorf("update asn status: %w", err)
	}
	return nil
}

// GetLineItemForUpdate obtiene una línea de ASN y bloquea la fila (SELECT FOR UPDATE)
// para que los recibos que postean contra la misma línea se serialicen.
func (r *ASNRepo) GetLineItemForUpdate(id string) (*entity.ASNLineItem, error) {
	query := `
		SELECT id, asn_id, sku, expected_quantity, received_quantity, unit_cost, lot_number, expiration_date, receiving_status
		FROM asn_line_items WHERE id = $1
		FOR UPDATE`
	var l entity.ASNLineItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ASNID, &l.SKU, &l.ExpectedQuantity, &l.ReceivedQuantity,
		&l.UnitCost, &l.LotNumber, &l.ExpirationDate, &l.ReceivingStatus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get asn line item for update: %w", err)
	}
	return &l, nil
}

// UpdateLineItemReceiving persiste received_quantity y receiving_status de una línea.
func (r *ASNRepo) UpdateLineItemReceiving(line *entity.ASNLineItem) error {
	query := `
		UPDATE asn_line_items SET received_quantity = $2, receiving_status = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, line.ID, line.ReceivedQuantity, line.ReceivingStatus)
	if err != nil {
		return fmt.Errorf("update asn line item receiving: %w", err)
	}
	return nil
}
