package entity

import "time"

// Unidades de medida admitidas para una categoría.
const (
	UnitKg     = "kg"
	UnitG      = "g"
	UnitLiters = "liters"
	UnitMl     = "ml"
	UnitPieces = "pieces"
	UnitBags   = "bags"
	UnitUnits  = "units"
	UnitTon    = "ton"
)

var validUnits = map[string]bool{
	UnitKg: true, UnitG: true, UnitLiters: true, UnitMl: true,
	UnitPieces: true, UnitBags: true, UnitUnits: true, UnitTon: true,
}

// ValidUnit indica si la unidad pertenece al enum admitido.
func ValidUnit(unit string) bool {
	return validUnits[unit]
}

// Category agrupa ítems bajo una unidad de medida. Nombre único por owner.
type Category struct {
	ID           string
	OwnerID      string
	CategoryName string
	Unit         string // kg, g, liters, ml, pieces, bags, units, ton
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
