package repository

import "github.com/jhoicas/Recepcion-api/internal/domain/entity"

// BinLocationRepository define el puerto del catálogo SKU → ubicaciones.
// ListBySKU devuelve las ubicaciones ordenadas por preferencia (Position);
// lista vacía significa que el SKU no está registrado.
type BinLocationRepository interface {
	Create(bin *entity.BinLocation) error
	ListBySKU(sku string) ([]*entity.BinLocation, error)
}
