package dto

import "time"

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	Reason     string `json:"reason"`
	ShowcaseID string `json:"showcase_id,omitempty"`
}

// MovementResponse movimiento del libro con su tipo derivado.
type MovementResponse struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	Quantity        int       `json:"quantity"`         // con signo
	DisplayQuantity int       `json:"display_quantity"` // valor absoluto
	Type            string    `json:"type"`             // entrada | saida | neutro
	Reason          string    `json:"reason"`
	ShowcaseID      string    `json:"showcase_id,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// BalanceResponse saldo derivado de un producto.
type BalanceResponse struct {
	ProductID   string `json:"product_id"`
	ProductCode string `json:"product_code,omitempty"`
	ProductName string `json:"product_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// BalanceListResponse saldos de los productos del catálogo.
type BalanceListResponse struct {
	Items []BalanceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StatsResponse estadísticas de movimientos en un período.
type StatsResponse struct {
	Entries int        `json:"entries"`
	Exits   int        `json:"exits"`
	Net     int        `json:"net"`
	Count   int        `json:"count"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}
