package receiving_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Recepcion-api/internal/application/dto"
	"github.com/jhoicas/Recepcion-api/internal/domain"
	"github.com/jhoicas/Recepcion-api/internal/domain/entity"
)

// seedBins registra una ubicación por SKU para que la generación de tareas
// de putaway tenga destino.
func seedBins(t *testing.T, env *testEnv, skus ...string) {
	t.Helper()
	for i, sku := range skus {
		_, err := env.binUC.Create(context.Background(), &dto.CreateBinLocationRequest{
			SKU:      sku,
			BinCode:  "A-01-0" + string(rune('1'+i)),
			Position: 0,
		})
		require.NoError(t, err)
	}
}

// seedASN crea un ASN de dos líneas (100 SKU-RED, 40 SKU-BLUE) y lo devuelve.
func seedASN(t *testing.T, env *testEnv) *dto.ASNResponse {
	t.Helper()
	asn, err := env.asnUC.Create(context.Background(), "recibidor-1", dto.CreateASNRequest{
		SupplierID:          "SUP-001",
		PurchaseOrderNumber: "PO-2026-0042",
		ExpectedArrivalDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		LineItems: []dto.CreateASNLineRequest{
			{SKU: "SKU-RED", ExpectedQuantity: decimal.NewFromInt(100), UnitCost: decimal.NewFromFloat(2.50)},
			{SKU: "SKU-BLUE", ExpectedQuantity: decimal.NewFromInt(40), UnitCost: decimal.NewFromFloat(7)},
		},
	})
	require.NoError(t, err)
	return asn
}

func TestReceiptCreate_GeneraLineasYTareasDePutaway(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedBins(t, env, "SKU-RED", "SKU-BLUE")
	asn := seedASN(t, env)

	out, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &asn.ID,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{
				ASNLineItemID:    &asn.LineItems[0].ID,
				SKU:              "SKU-RED",
				QuantityOrdered:  decimal.NewFromInt(100),
				QuantityReceived: decimal.NewFromInt(100),
				UnitCost:         decimal.NewFromFloat(2.50),
			},
			{
				ASNLineItemID:    &asn.LineItems[1].ID,
				SKU:              "SKU-BLUE",
				QuantityOrdered:  decimal.NewFromInt(40),
				QuantityReceived: decimal.NewFromInt(25),
				QuantityDamaged:  decimal.NewFromInt(2),
				UnitCost:         decimal.NewFromFloat(7),
			},
		},
	})
	require.NoError(t, err)

	assert.Regexp(t, `^RCP-[0-9A-F]+$`, out.ID)
	assert.Equal(t, entity.ReceiptStatusReceiving, out.Status)
	require.Len(t, out.LineItems, 2)
	assert.True(t, out.LineItems[0].TotalCost.Equal(decimal.NewFromInt(250)),
		"TotalCost = UnitCost * QuantityReceived")
	assert.Equal(t, entity.LinePutawayPending, out.LineItems[0].PutawayStatus)

	// Una tarea de putaway por línea, apuntando a la primera ubicación del SKU.
	require.Len(t, env.store.tasks, 2)
	for i, task := range env.store.tasks {
		assert.Regexp(t, `^PTA-[0-9A-F]+$`, task.ID)
		assert.Equal(t, out.LineItems[i].ID, task.ReceiptLineID)
		assert.Equal(t, entity.PutawayTaskPending, task.Status)
		assert.Equal(t, entity.DefaultPutawayPriority, task.Priority)
		assert.True(t, task.QuantityPutaway.IsZero())
	}
	// La cantidad a guardar es la recibida completa, incluyendo lo dañado.
	assert.True(t, env.store.tasks[1].QuantityToPutaway.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "A-01-01", env.store.tasks[0].TargetBinLocation)
	assert.Equal(t, "A-01-02", env.store.tasks[1].TargetBinLocation)
}

func TestReceiptCreate_TareaApuntaALaPrimeraUbicacion(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// Dos ubicaciones registradas: la tarea siempre apunta a la primera.
	for i, code := range []string{"A-01-01", "A-01-02"} {
		_, err := env.binUC.Create(ctx, &dto.CreateBinLocationRequest{
			SKU: "SKU001", BinCode: code, Position: i,
		})
		require.NoError(t, err)
	}

	_, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{SKU: "SKU001", QuantityReceived: decimal.NewFromInt(100)},
		},
	})
	require.NoError(t, err)

	require.Len(t, env.store.tasks, 1)
	task := env.store.tasks[0]
	assert.Equal(t, "A-01-01", task.TargetBinLocation)
	assert.True(t, task.QuantityToPutaway.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.PutawayTaskPending, task.Status)
}

func TestReceiptCreate_PosteaCantidadesAlASN(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedBins(t, env, "SKU-RED", "SKU-BLUE")
	asn := seedASN(t, env)

	_, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &asn.ID,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{ASNLineItemID: &asn.LineItems[0].ID, SKU: "SKU-RED", QuantityReceived: decimal.NewFromInt(100)},
			{ASNLineItemID: &asn.LineItems[1].ID, SKU: "SKU-BLUE", QuantityReceived: decimal.NewFromInt(25)},
		},
	})
	require.NoError(t, err)

	refreshed, err := env.asnUC.GetByID(ctx, asn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ASNLineComplete, refreshed.LineItems[0].ReceivingStatus)
	assert.True(t, refreshed.LineItems[0].ReceivedQuantity.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, entity.ASNLinePartial, refreshed.LineItems[1].ReceivingStatus)
	assert.True(t, refreshed.LineItems[1].ReceivedQuantity.Equal(decimal.NewFromInt(25)))
	// Mientras quede una línea PARTIAL el ASN no se cierra.
	assert.Equal(t, entity.ASNStatusPending, refreshed.Status)

	// Segundo recibo parcial completa la línea azul y cierra el ASN.
	_, err = env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &asn.ID,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{ASNLineItemID: &asn.LineItems[1].ID, SKU: "SKU-BLUE", QuantityReceived: decimal.NewFromInt(15)},
		},
	})
	require.NoError(t, err)

	refreshed, err = env.asnUC.GetByID(ctx, asn.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ASNLineComplete, refreshed.LineItems[1].ReceivingStatus)
	assert.Equal(t, entity.ASNStatusReceived, refreshed.Status)
	assert.NotNil(t, refreshed.ActualArrivalDate)
}

func TestReceiptCreate_SKUSinUbicacion_RevierteTodo(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedBins(t, env, "SKU-RED") // SKU-BLUE sin ubicación registrada
	asn := seedASN(t, env)

	_, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &asn.ID,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{ASNLineItemID: &asn.LineItems[0].ID, SKU: "SKU-RED", QuantityReceived: decimal.NewFromInt(100)},
			{ASNLineItemID: &asn.LineItems[1].ID, SKU: "SKU-BLUE", QuantityReceived: decimal.NewFromInt(25)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "SKU SKU-BLUE not found", err.Error())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// La transacción revierte TODO: ni recibo, ni líneas, ni tareas, ni
	// cantidades posteadas a la primera línea del ASN.
	assert.Empty(t, env.store.receipts)
	assert.Empty(t, env.store.receiptLines)
	assert.Empty(t, env.store.tasks)
	refreshed, err := env.asnUC.GetByID(ctx, asn.ID)
	require.NoError(t, err)
	assert.True(t, refreshed.LineItems[0].ReceivedQuantity.IsZero(),
		"el posteo al ASN de la primera línea debe revertirse")
	assert.Equal(t, entity.ASNLinePending, refreshed.LineItems[0].ReceivingStatus)
}

func TestReceiptCreate_ASNInexistente(t *testing.T) {
	env := newTestEnv()
	seedBins(t, env, "SKU-RED")
	missing := "ASN-DOESNOTEXIST"

	_, err := env.receiptUC.Create(context.Background(), "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &missing,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{SKU: "SKU-RED", QuantityReceived: decimal.NewFromInt(10)},
		},
	})
	require.Error(t, err)
	assert.Equal(t, "ASN ASN-DOESNOTEXIST not found", err.Error())
	assert.Empty(t, env.store.receipts)
}

func TestReceiptCreate_SinASN_ReciboIndependiente(t *testing.T) {
	env := newTestEnv()
	seedBins(t, env, "SKU-RET")

	out, err := env.receiptUC.Create(context.Background(), "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: entity.ReceiptTypeReturn,
		LineItems: []dto.CreateReceiptLineRequest{
			{SKU: "SKU-RET", QuantityReceived: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, out.ASNID)
	assert.Equal(t, entity.ReceiptTypeReturn, out.ReceiptType)
	assert.Len(t, env.store.tasks, 1)
}

func TestReceiptCreate_ValidaEntrada(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: "INVALIDO",
		LineItems:   []dto.CreateReceiptLineRequest{{SKU: "X", QuantityReceived: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: entity.ReceiptTypePO,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "recibo sin líneas no es válido")

	_, err = env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: entity.ReceiptTypePO,
		LineItems:   []dto.CreateReceiptLineRequest{{SKU: "X", QuantityReceived: decimal.NewFromInt(-5)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa no es válida")
}

func TestReceiptCreate_CantidadCeroRechazada(t *testing.T) {
	env := newTestEnv()
	seedBins(t, env, "SKU-RED")

	// Una línea con cantidad cero generaría una tarea 0/0 que nace llena
	// pero PENDING; se rechaza en validación.
	_, err := env.receiptUC.Create(context.Background(), "recibidor-1", dto.CreateReceiptRequest{
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{SKU: "SKU-RED", QuantityReceived: decimal.Zero},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.store.receipts)
	assert.Empty(t, env.store.tasks)
}

func TestReceiptGetByID_LecturaRepetidaIdentica(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	seedBins(t, env, "SKU-RED", "SKU-BLUE")
	asn := seedASN(t, env)

	created, err := env.receiptUC.Create(ctx, "recibidor-1", dto.CreateReceiptRequest{
		ASNID:       &asn.ID,
		ReceiptType: entity.ReceiptTypePO,
		LineItems: []dto.CreateReceiptLineRequest{
			{ASNLineItemID: &asn.LineItems[0].ID, SKU: "SKU-RED", QuantityReceived: decimal.NewFromInt(100), UnitCost: decimal.NewFromFloat(2.50)},
			{ASNLineItemID: &asn.LineItems[1].ID, SKU: "SKU-BLUE", QuantityReceived: decimal.NewFromInt(25), QuantityDamaged: decimal.NewFromInt(2), UnitCost: decimal.NewFromFloat(7)},
		},
	})
	require.NoError(t, err)

	// Dos lecturas sin escrituras intermedias devuelven exactamente lo mismo.
	first, err := env.receiptUC.GetByID(ctx, created.ID)
	require.NoError(t, err)
	second, err := env.receiptUC.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestReceiptGetByID_NoExiste(t *testing.T) {
	env := newTestEnv()

	_, err := env.receiptUC.GetByID(context.Background(), "RCP-MISSING")
	require.Error(t, err)
	assert.Equal(t, "Receipt RCP-MISSING not found", err.Error())
}
