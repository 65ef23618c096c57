// Package ident genera identificadores legibles con prefijo por tipo de
// entidad (ej. ASN-3F9A2C81D4). El prefijo es presentación; el ID completo es
// la clave persistida.
package ident

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind es el tipo de entidad para el prefijo del ID.
type Kind string

// Prefijos por entidad.
const (
	KindASN         Kind = "ASN"
	KindASNLine     Kind = "ASNL"
	KindReceipt     Kind = "RCP"
	KindReceiptLine Kind = "RCPL"
	KindPutawayTask Kind = "PTA"
)

const suffixLen = 10

// Generator produce identificadores únicos por tipo de entidad. Se inyecta
// en los casos de uso; los tests pueden sustituirlo por uno determinista.
type Generator interface {
	NewID(kind Kind) string
}

type randomGenerator struct{}

// New construye el generador por defecto (sufijo aleatorio basado en UUID).
func New() Generator {
	return randomGenerator{}
}

// NewID devuelve "<PREFIJO>-<sufijo>" con sufijo hex de 10 caracteres.
func (randomGenerator) NewID(kind Kind) string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s-%s", kind, strings.ToUpper(raw[:suffixLen]))
}
