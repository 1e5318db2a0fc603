package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DispatchShowcaseItem línea de un despacho: cantidad de piezas enviadas (> 0).
type DispatchShowcaseItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// DispatchShowcaseRequest body para POST /api/showcases.
type DispatchShowcaseRequest struct {
	DistributorID string                 `json:"distributor_id"`
	Items         []DispatchShowcaseItem `json:"items"`
}

// ShowcaseItemResponse línea de una vitrina.
type ShowcaseItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// ShowcaseSummaryResponse resumen de una vitrina.
// TotalValue está en BRL; TotalValuePYG y TotalValueDisplay son la conversión a guaraníes.
type ShowcaseSummaryResponse struct {
	ID                string                 `json:"id"`
	Code              string                 `json:"code"`
	DistributorID     string                 `json:"distributor_id"`
	CreatedAt         time.Time              `json:"created_at"`
	Items             []ShowcaseItemResponse `json:"items"`
	TotalPieces       int                    `json:"total_pieces"`
	TotalProducts     int                    `json:"total_products"`
	TotalValue        decimal.Decimal        `json:"total_value"`
	TotalValuePYG     int64                  `json:"total_value_pyg"`
	TotalValueDisplay string                 `json:"total_value_display"`
}

// ShowcaseHistoryResponse historial de vitrinas de un distribuidor.
type ShowcaseHistoryResponse struct {
	DistributorID string                    `json:"distributor_id"`
	Total         int                       `json:"total"`
	Showcases     []ShowcaseSummaryResponse `json:"showcases"`
}
