package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo (semillas, fertilizante, producto cosechado).
// Nombre único por categoría; la cantidad en mano vive en Stock, no aquí.
type Item struct {
	ID         string
	ItemName   string
	CategoryID string
	Price      decimal.Decimal // precio unitario, >= 0
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
