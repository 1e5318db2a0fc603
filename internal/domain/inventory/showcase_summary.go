package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// ShowcaseItem una línea de la vitrina: producto resuelto, cantidad absoluta y precio.
type ShowcaseItem struct {
	MovementID string
	Product    *entity.Product
	Quantity   int // valor absoluto
	UnitPrice  decimal.Decimal
	Total      decimal.Decimal
}

// ShowcaseSummary resumen derivado de una vitrina.
type ShowcaseSummary struct {
	Showcase      entity.Showcase
	Items         []ShowcaseItem
	TotalPieces   int
	TotalProducts int // productos distintos
	TotalValue    decimal.Decimal
}

// NewShowcaseItem arma la línea para un movimiento cuyo producto ya fue resuelto.
func NewShowcaseItem(m *entity.InventoryMovement, p *entity.Product) ShowcaseItem {
	price := UnitPrice(p)
	return ShowcaseItem{
		MovementID: m.ID,
		Product:    p,
		Quantity:   DisplayQuantity(m.Quantity),
		UnitPrice:  price,
		Total:      LineTotal(m.Quantity, price),
	}
}

// Summarize calcula los totales de la vitrina a partir de sus líneas (conserva el orden).
func Summarize(showcase entity.Showcase, items []ShowcaseItem) ShowcaseSummary {
	sum := ShowcaseSummary{
		Showcase:   showcase,
		Items:      items,
		TotalValue: decimal.Zero,
	}
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		sum.TotalPieces += it.Quantity
		sum.TotalValue = sum.TotalValue.Add(it.Total)
		if it.Product != nil {
			seen[it.Product.ID] = struct{}{}
		}
	}
	sum.TotalProducts = len(seen)
	return sum
}
