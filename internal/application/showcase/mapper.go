package showcase

import (
	"github.com/jhoicas/joyeria-api/internal/application/dto"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/pkg/currency"
)

// ToSummaryResponse convierte el resumen de dominio al DTO (valores en BRL más su conversión a PYG).
func ToSummaryResponse(sum inventory.ShowcaseSummary) dto.ShowcaseSummaryResponse {
	items := make([]dto.ShowcaseItemResponse, 0, len(sum.Items))
	for _, it := range sum.Items {
		row := dto.ShowcaseItemResponse{
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		}
		if it.Product != nil {
			row.ProductID = it.Product.ID
			row.ProductCode = it.Product.Code
			row.ProductName = it.Product.Name
		}
		items = append(items, row)
	}
	return dto.ShowcaseSummaryResponse{
		ID:                sum.Showcase.ID,
		Code:              sum.Showcase.Code,
		DistributorID:     sum.Showcase.DistributorID,
		CreatedAt:         sum.Showcase.CreatedAt,
		Items:             items,
		TotalPieces:       sum.TotalPieces,
		TotalProducts:     sum.TotalProducts,
		TotalValue:        sum.TotalValue,
		TotalValuePYG:     currency.ConvertBRLToPYG(sum.TotalValue),
		TotalValueDisplay: currency.FormatPYGInt(currency.ConvertBRLToPYG(sum.TotalValue)),
	}
}

// ToHistoryResponse arma la respuesta del historial de un distribuidor.
func ToHistoryResponse(distributorID string, list []inventory.ShowcaseSummary) *dto.ShowcaseHistoryResponse {
	out := make([]dto.ShowcaseSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSummaryResponse(s))
	}
	return &dto.ShowcaseHistoryResponse{
		DistributorID: distributorID,
		Total:         len(out),
		Showcases:     out,
	}
}
