package entity

import "time"

// Category agrupa productos del catálogo (anillos, collares, aretes...).
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
