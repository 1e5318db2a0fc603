package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// UnitPrice precio unitario usado para valorizar una vitrina:
// precio de venta; si no existe, precio de costo; si tampoco, cero.
func UnitPrice(p *entity.Product) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if p.SellingPrice.Valid {
		return p.SellingPrice.Decimal
	}
	if p.CostPrice.Valid {
		return p.CostPrice.Decimal
	}
	return decimal.Zero
}

// LineTotal cantidad (en valor absoluto) × precio unitario.
func LineTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(DisplayQuantity(quantity))).Mul(unitPrice)
}
