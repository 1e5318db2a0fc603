package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una pieza del catálogo de joyería.
// Los precios son opcionales: una pieza recién cargada puede no tener precio de venta todavía.
type Product struct {
	ID           string
	CategoryID   string // vacío si no tiene categoría
	Code         string // código único de la pieza
	Name         string
	CostPrice    decimal.NullDecimal // precio de costo (BRL)
	SellingPrice decimal.NullDecimal // precio de venta (BRL)
	ImageURL     string              // URL en el almacenamiento de objetos; la subida es externa
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
