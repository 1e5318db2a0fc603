// Package currency formatea montos en guaraníes (PYG) y convierte desde reales (BRL).
//
// Los precios del catálogo se cargan en BRL; los distribuidores trabajan en PYG,
// por eso los reportes muestran siempre el valor convertido.
package currency

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Symbol glifo del guaraní.
const Symbol = "₲"

// BRLToPYGRate tasa fija BRL → PYG.
const BRLToPYGRate = 1200

// ZeroDisplay texto mostrado cuando el valor es nulo o no numérico.
const ZeroDisplay = Symbol + "0"

var (
	rate    = decimal.NewFromInt(BRLToPYGRate)
	printer = message.NewPrinter(language.AmericanEnglish)
)

// FormatPYG formatea un monto en guaraníes sin decimales y con separador de miles ",".
// Un valor nulo devuelve ZeroDisplay.
func FormatPYG(value decimal.NullDecimal) string {
	if !value.Valid {
		return ZeroDisplay
	}
	return format(value.Decimal.Round(0).IntPart())
}

// FormatPYGFloat igual que FormatPYG para float64; NaN e infinitos devuelven ZeroDisplay.
func FormatPYGFloat(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ZeroDisplay
	}
	return FormatPYG(decimal.NewNullDecimal(decimal.NewFromFloat(value)))
}

// FormatPYGInt formatea un monto entero en guaraníes.
func FormatPYGInt(value int64) string {
	return format(value)
}

func format(n int64) string {
	if n < 0 {
		return "-" + Symbol + printer.Sprintf("%d", -n)
	}
	return Symbol + printer.Sprintf("%d", n)
}

// ConvertBRLToPYG multiplica por la tasa fija y redondea al entero más cercano
// (el guaraní no tiene subunidades). Medios se redondean alejándose de cero.
func ConvertBRLToPYG(value decimal.Decimal) int64 {
	return value.Mul(rate).Round(0).IntPart()
}
