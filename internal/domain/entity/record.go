package entity

import "time"

// Record movimiento de dinero (entrada/salida). Referencia un Status y la
// terna Type/Category/Subcategory, que debe ser jerárquicamente consistente:
// la categoría pertenece al tipo y la subcategoría a la categoría.
type Record struct {
	ID            string
	Date          time.Time // asignada al crear; nunca se modifica
	StatusID      string
	TypeID        string
	CategoryID    string
	SubcategoryID string
	Amount        int64 // siempre > 0
	Comment       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecordDetail es la vista de lectura de un Record con los títulos de las
// entidades relacionadas ya resueltos (para la capa de presentación).
type RecordDetail struct {
	Record
	StatusTitle      string
	TypeTitle        string
	CategoryTitle    string
	SubcategoryTitle string
}
