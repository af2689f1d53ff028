package entity

import "time"

// User usuario de la API (acceso a los helpers administrativos).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
