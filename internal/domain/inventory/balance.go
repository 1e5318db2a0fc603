package inventory

import (
	"time"

	"github.com/jhoicas/joyeria-api/internal/domain/entity"
)

// ProductBalance stock disponible de un producto, derivado sumando sus movimientos.
// Nunca se persiste.
type ProductBalance struct {
	ProductID string
	Quantity  int
}

// MovementStats totales de un conjunto de movimientos.
type MovementStats struct {
	Entries int // Σ cantidades positivas
	Exits   int // Σ |cantidades negativas|
	Net     int // Entries - Exits
	Count   int // cantidad de movimientos, neutros incluidos
}

// Period rango de fechas cerrado [From, To]. Un extremo nil no restringe.
type Period struct {
	From *time.Time
	To   *time.Time
}

// Contains indica si t cae dentro del período (extremos inclusivos).
func (p *Period) Contains(t time.Time) bool {
	if p == nil {
		return true
	}
	if p.From != nil && t.Before(*p.From) {
		return false
	}
	if p.To != nil && t.After(*p.To) {
		return false
	}
	return true
}

// Balance suma las cantidades con signo. El resultado no depende del orden.
// El saldo puede quedar negativo: la conciliación física se hace fuera del sistema.
func Balance(movements []*entity.InventoryMovement) int {
	total := 0
	for _, m := range movements {
		total += m.Quantity
	}
	return total
}

// BalancesByProduct agrupa y suma por producto.
func BalancesByProduct(movements []*entity.InventoryMovement) map[string]int {
	out := make(map[string]int)
	for _, m := range movements {
		out[m.ProductID] += m.Quantity
	}
	return out
}

// Stats calcula entradas, salidas, neto y conteo.
func Stats(movements []*entity.InventoryMovement) MovementStats {
	var s MovementStats
	for _, m := range movements {
		switch Classify(m.Quantity) {
		case MovementEntry:
			s.Entries += m.Quantity
		case MovementExit:
			s.Exits += -m.Quantity
		}
		s.Count++
	}
	s.Net = s.Entries - s.Exits
	return s
}
