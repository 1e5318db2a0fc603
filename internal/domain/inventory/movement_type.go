package inventory

// MovementType clasificación de un movimiento derivada del signo de la cantidad.
type MovementType string

// Tipos de movimiento.
const (
	MovementEntry   MovementType = "entrada"
	MovementExit    MovementType = "saida"
	MovementNeutral MovementType = "neutro"
)

// Classify deriva el tipo del signo: >0 entrada, <0 saida, 0 neutro.
func Classify(quantity int) MovementType {
	switch {
	case quantity > 0:
		return MovementEntry
	case quantity < 0:
		return MovementExit
	default:
		return MovementNeutral
	}
}

// DisplayQuantity cantidad a mostrar: siempre el valor absoluto.
func DisplayQuantity(quantity int) int {
	if quantity < 0 {
		return -quantity
	}
	return quantity
}
