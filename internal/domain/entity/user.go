package entity

import "time"

// User representa al dueño de un conjunto de categorías, ítems, stock y cultivos.
// PasswordHash nunca se serializa hacia el cliente; los DTOs lo omiten.
type User struct {
	ID           string
	Username     string // único, lowercase
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
