// Package receiving contiene servicios de dominio puros del flujo de
// recepción: cálculos sobre cantidades y costos sin acceso a datos.
package receiving

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// LineTotalCost calcula el costo total de una línea de recibo:
// CostoTotal = CantidadRecibida * CostoUnitario.
func LineTotalCost(quantityReceived, unitCost decimal.Decimal) decimal.Decimal {
	return unitCost.Mul(quantityReceived)
}

// ReceivingVariance devuelve la diferencia recibido - esperado de una línea
// de ASN. Negativo = faltante, positivo = sobrante.
func ReceivingVariance(expected, received decimal.Decimal) decimal.Decimal {
	return received.Sub(expected)
}

// LineReceivingStatus deriva el estado de recepción de una línea de ASN a
// partir del acumulado recibido frente a lo esperado.
func LineReceivingStatus(expected, received decimal.Decimal) string {
	switch {
	case received.GreaterThanOrEqual(expected) && expected.IsPositive():
		return entity.ASNLineComplete
	case received.IsPositive():
		return entity.ASNLinePartial
	default:
		return entity.ASNLinePending
	}
}
