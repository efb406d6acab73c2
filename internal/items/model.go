package items

// Item representa una entrada del catálogo.
// Price se modela con Decimal para evitar errores de precisión con float
// y para que la escala sobreviva la serialización.
// Los campos opcionales son punteros: nil significa "ausente".
type Item struct {
	ID            string         `json:"id,omitempty"`
	Name          string         `json:"name"`
	ImageURL      *string        `json:"imageUrl,omitempty"`
	Description   *string        `json:"description,omitempty"`
	Price         *Decimal       `json:"price"`
	Rating        *float64       `json:"rating"`
	Specification *Specification `json:"specification,omitempty"`
}

// WithID devuelve una copia del item con el id asignado.
// No muta el original: los items se tratan como valores inmutables.
func (item Item) WithID(id string) Item {
	item.ID = id
	return item
}

// Specification es el detalle opcional de producto de un Item.
// Todos los campos son opcionales; una specification parcial es válida.
type Specification struct {
	Brand          *string  `json:"brand,omitempty"`
	Model          *string  `json:"model,omitempty"`
	Color          *string  `json:"color,omitempty"`
	Weight         *Decimal `json:"weight,omitempty"`
	Dimensions     *string  `json:"dimensions,omitempty"`
	Material       *string  `json:"material,omitempty"`
	WarrantyMonths *int     `json:"warrantyMonths,omitempty"`
}

// ComparisonResult es el resultado efímero de comparar dos items.
// No se persiste; Differences siempre trae exactamente las claves
// "priceDifference" y "ratingDifference".
type ComparisonResult struct {
	BestPriceItemID string            `json:"bestPriceItemId"`
	BestPrice       float64           `json:"bestPrice"`
	BestRatedItemID string            `json:"bestRatedItemId"`
	BestRating      float64           `json:"bestRating"`
	Differences     map[string]string `json:"differences"`
}
