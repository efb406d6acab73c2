package items

import (
	"fmt"
	"strings"
)

// Validadores puros de campos. No tocan storage y fallan rápido en la
// primera regla violada. Cada error envuelve ErrorInvalidInput, así el
// caller puede matchear con errors.Is sin perder el mensaje.

// ValidateID falla si el id es vacío o solo espacios.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: item id cannot be blank", ErrorInvalidInput)
	}
	return nil
}

// ValidateName falla si el nombre es vacío o solo espacios.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name cannot be blank", ErrorInvalidInput)
	}
	return nil
}

// ValidatePrice falla si el precio falta o es negativo. Cero es válido.
func ValidatePrice(price *Decimal) error {
	if price == nil {
		return fmt.Errorf("%w: item price is required", ErrorInvalidInput)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: item price cannot be negative", ErrorInvalidInput)
	}
	return nil
}

// ValidateRating falla si el rating falta o queda fuera de [0.0, 5.0].
func ValidateRating(rating *float64) error {
	if rating == nil {
		return fmt.Errorf("%w: item rating is required", ErrorInvalidInput)
	}
	if *rating < 0.0 || *rating > 5.0 {
		return fmt.Errorf("%w: item rating must be between 0.0 and 5.0", ErrorInvalidInput)
	}
	return nil
}

// ValidateNotNil falla si la referencia al item está ausente.
func ValidateNotNil(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item cannot be nil", ErrorInvalidInput)
	}
	return nil
}

// ValidateSpecification valida cada campo presente de forma independiente.
// Una specification nil es válida (el item simplemente no tiene detalle);
// los campos nil también: se permiten specifications parciales.
func ValidateSpecification(specification *Specification) error {
	if specification == nil {
		return nil
	}
	if specification.Brand != nil && strings.TrimSpace(*specification.Brand) == "" {
		return fmt.Errorf("%w: specification brand cannot be blank", ErrorInvalidInput)
	}
	if specification.Weight != nil && specification.Weight.IsNegative() {
		return fmt.Errorf("%w: specification weight cannot be negative", ErrorInvalidInput)
	}
	if specification.WarrantyMonths != nil && *specification.WarrantyMonths < 0 {
		return fmt.Errorf("%w: specification warranty months cannot be negative", ErrorInvalidInput)
	}
	return nil
}

// ValidateItem compone la validación completa del objeto.
func ValidateItem(item *Item) error {
	if err := ValidateNotNil(item); err != nil {
		return err
	}
	if err := ValidateName(item.Name); err != nil {
		return err
	}
	if err := ValidatePrice(item.Price); err != nil {
		return err
	}
	if err := ValidateRating(item.Rating); err != nil {
		return err
	}
	return ValidateSpecification(item.Specification)
}
