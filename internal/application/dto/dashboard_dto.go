package dto

// ReceivingSummaryDTO respuesta de GET /api/dashboard/receiving.
// Contadores simples del estado actual del muelle de recepción.
type ReceivingSummaryDTO struct {
	InboundASNs       int `json:"inbound_asns"`        // PENDING + IN_TRANSIT
	OpenReceipts      int `json:"open_receipts"`       // en estado RECEIVING
	PendingPutaway    int `json:"pending_putaway"`     // tareas PENDING
	PutawayInProgress int `json:"putaway_in_progress"` // tareas IN_PROGRESS
}
