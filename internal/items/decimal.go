package items

import "github.com/shopspring/decimal"

// Decimal envuelve decimal.Decimal fijando la serialización a la escala
// del valor: "100.00" entra y sale como "100.00". El MarshalJSON default
// de la librería recorta ceros finales ("100.00" -> "100"), y eso rompe
// el round-trip exacto de los montos persistidos.
type Decimal struct {
	decimal.Decimal
}

// NewDecimal envuelve un decimal ya construido.
func NewDecimal(value decimal.Decimal) Decimal {
	return Decimal{Decimal: value}
}

// NewDecimalFromString parsea conservando la escala del literal.
func NewDecimalFromString(value string) (Decimal, error) {
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{Decimal: parsed}, nil
}

// Canonical es la representación con la escala del valor:
// exponente -2 imprime dos decimales aunque sean ceros.
func (value Decimal) Canonical() string {
	if value.Exponent() < 0 {
		return value.StringFixed(-value.Exponent())
	}
	return value.String()
}

// MarshalJSON emite la forma canónica entre comillas.
// El UnmarshalJSON embebido ya conserva la escala; solo la ida recorta.
func (value Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + value.Canonical() + `"`), nil
}
