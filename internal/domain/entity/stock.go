package entity

import "time"

// Stock es la entrada del libro mayor de inventario: cantidad en mano de un
// ítem para un owner. Invariante: Quantity >= 0 siempre; el decremento se
// hace con un UPDATE condicional, nunca con leer-y-escribir.
type Stock struct {
	ID        string
	ItemID    string
	OwnerID   string
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
