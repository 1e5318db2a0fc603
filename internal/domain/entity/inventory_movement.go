package entity

import "time"

// Motivos habituales de movimiento. El campo Reason acepta también texto libre.
const (
	ReasonSale       = "venda"
	ReasonRestock    = "reposicao"
	ReasonShowcase   = "vitrine"
	ReasonReturn     = "devolucao"
	ReasonAdjustment = "ajuste"
)

// InventoryMovement es un registro inmutable del libro de movimientos.
// Quantity positiva = entrada, negativa = salida, cero = neutro. No se persiste un campo
// de tipo: la dirección se deriva siempre del signo.
type InventoryMovement struct {
	ID         string
	ProductID  string
	Quantity   int
	Reason     string
	ShowcaseID string // vacío si el movimiento no pertenece a una vitrina
	CreatedBy  string
	CreatedAt  time.Time
}
