package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/repository"
)

var _ repository.BinLocationRepository = (*BinLocationRepo)(nil)

// BinLocationRepo implementación del catálogo SKU → ubicaciones sobre PostgreSQL (usable con pool o tx).
type BinLocationRepo struct {
	q Querier
}

// NewBinLocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBinLocationRepository(q Querier) *BinLocationRepo {
	return &BinLocationRepo{q: q}
}

// Create registra una ubicación para un SKU.
func (r *BinLocationRepo) Create(bin *entity.BinLocation) error {
	query := `
		INSERT INTO sku_bin_locations (sku, bin_code, position)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, bin.SKU, bin.BinCode, bin.Position)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert bin location: %w", err)
	}
	return nil
}

// ListBySKU devuelve las ubicaciones del SKU ordenadas por preferencia.
func (r *BinLocationRepo) ListBySKU(sku string) ([]*entity.BinLocation, error) {
	query := `
		SELECT sku, bin_code, position
		FROM sku_bin_locations WHERE sku = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, sku)
	if err != nil {
		return nil, fmt.Errorf("list bin locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.BinLocation
	for rows.Next() {
		var b entity.BinLocation
		if err := rows.Scan(&b.SKU, &b.BinCode, &b.Position); err != nil {
			return nil, fmt.Errorf("scan bin location: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
