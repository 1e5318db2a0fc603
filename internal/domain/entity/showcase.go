package entity

import "time"

// Showcase es un envío en consignación ("vitrina") a un distribuidor.
// Agrupa los movimientos creados en el mismo despacho (misma ShowcaseID).
type Showcase struct {
	ID            string
	Code          string // código legible, ej. VT-20261018-3F9A2C
	DistributorID string
	CreatedAt     time.Time
}
