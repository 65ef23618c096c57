package entity

// BinLocation asocia un SKU con una ubicación de almacenamiento. Position
// define el orden de preferencia (la generación de tareas usa la primera).
type BinLocation struct {
	SKU      string
	BinCode  string // ej. A-01-01
	Position int
}
