package receiving_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
	"github.com/jhoicas/Recepcion-api/internal/domain/receiving"
)

func TestLineTotalCost(t *testing.T) {
	total := receiving.LineTotalCost(decimal.NewFromInt(25), decimal.NewFromFloat(7.50))
	assert.True(t, total.Equal(decimal.NewFromFloat(187.50)))

	assert.True(t, receiving.LineTotalCost(decimal.Zero, decimal.NewFromInt(10)).IsZero())
}

func TestReceivingVariance(t *testing.T) {
	// Faltante: se esperaban 100, llegaron 75.
	v := receiving.ReceivingVariance(decimal.NewFromInt(100), decimal.NewFromInt(75))
	assert.True(t, v.Equal(decimal.NewFromInt(-25)))

	// Sobrante: llegó de más.
	v = receiving.ReceivingVariance(decimal.NewFromInt(100), decimal.NewFromInt(110))
	assert.True(t, v.Equal(decimal.NewFromInt(10)))
}

func TestLineReceivingStatus(t *testing.T) {
	cien := decimal.NewFromInt(100)

	assert.Equal(t, entity.ASNLinePending, receiving.LineReceivingStatus(cien, decimal.Zero))
	assert.Equal(t, entity.ASNLinePartial, receiving.LineReceivingStatus(cien, decimal.NewFromInt(40)))
	assert.Equal(t, entity.ASNLineComplete, receiving.LineReceivingStatus(cien, cien))
	// Sobre-recepción también cuenta como COMPLETE.
	assert.Equal(t, entity.ASNLineComplete, receiving.LineReceivingStatus(cien, decimal.NewFromInt(120)))
}
