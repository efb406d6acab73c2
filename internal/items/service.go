package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Errores de dominio (no HTTP). El handler los traduce a status codes.
var (
	ErrorInvalidInput = errors.New("invalid input")
	ErrorNotFound     = errors.New("item not found")
)

// RepositoryAPI es el puerto de persistencia del que depende el service.
// Permite testear el dominio con fakes y enchufar distintos storages.
type RepositoryAPI interface {
	// Save hace upsert por id. Si el item viene sin id, el storage asigna
	// uno y lo devuelve en el item retornado. No descarta campos.
	Save(ctx context.Context, item Item) (Item, error)
	// FindByID devuelve el item y found=false si no existe.
	// Un id ausente NO es un error del puerto.
	FindByID(ctx context.Context, id string) (Item, bool, error)
	// DeleteByID borra el registro; si no existe es un no-op.
	DeleteByID(ctx context.Context, id string) error
}

// Service contiene las reglas de negocio de items.
// Es stateless: todo el estado vive en el repositorio.
type Service struct {
	repository RepositoryAPI
}

// NewService crea un service de items.
func NewService(repository RepositoryAPI) *Service {
	return &Service{repository: repository}
}

// notFound envuelve ErrorNotFound con el id ofensor para diagnóstico.
func notFound(id string) error {
	return fmt.Errorf("%w: id %q", ErrorNotFound, id)
}

// Create valida el item y delega la creación al repositorio.
// El caller NO debe mandar id: la asignación es responsabilidad del storage.
func (service *Service) Create(ctx context.Context, item *Item) (Item, error) {
	if err := ValidateNotNil(item); err != nil {
		return Item{}, err
	}
	if strings.TrimSpace(item.ID) != "" {
		return Item{}, fmt.Errorf("%w: item id must not be set on create", ErrorInvalidInput)
	}
	if err := ValidateName(item.Name); err != nil {
		return Item{}, err
	}
	if err := ValidatePrice(item.Price); err != nil {
		return Item{}, err
	}
	if err := ValidateRating(item.Rating); err != nil {
		return Item{}, err
	}
	if err := ValidateSpecification(item.Specification); err != nil {
		return Item{}, err
	}

	return service.repository.Save(ctx, *item)
}

// Get obtiene un item por id.
func (service *Service) Get(ctx context.Context, id string) (Item, error) {
	if err := ValidateID(id); err != nil {
		return Item{}, err
	}

	item, found, err := service.repository.FindByID(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if !found {
		return Item{}, notFound(id)
	}
	return item, nil
}

// Update pisa el registro completo (overwrite). El id debe existir:
// un update no puede crear registros.
func (service *Service) Update(ctx context.Context, item *Item) (Item, error) {
	if err := ValidateNotNil(item); err != nil {
		return Item{}, err
	}
	if err := ValidateID(item.ID); err != nil {
		return Item{}, err
	}

	if _, err := service.Get(ctx, item.ID); err != nil {
		return Item{}, err
	}

	return service.repository.Save(ctx, *item)
}

// Delete borra un item por id. Exige existencia previa para poder
// distinguir NotFound de un delete idempotente del storage.
func (service *Service) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}

	if _, err := service.Get(ctx, id); err != nil {
		return err
	}

	return service.repository.DeleteByID(ctx, id)
}

// Compare compara dos items por precio y rating.
//
// Ambos ids se validan antes de tocar el repositorio (id1 primero).
// Si un item guardado tiene precio o rating inválido, eso es
// ErrorInvalidInput aunque los dos lookups hayan funcionado.
//
// Desempate: con precios iguales gana id2 el mejor precio, y con ratings
// iguales gana id2 el mejor rating. Es el comportamiento observable de la
// comparación estricta (< y >) y está fijado por tests: no "arreglar".
func (service *Service) Compare(ctx context.Context, id1, id2 string) (ComparisonResult, error) {
	if err := ValidateID(id1); err != nil {
		return ComparisonResult{}, err
	}
	if err := ValidateID(id2); err != nil {
		return ComparisonResult{}, err
	}

	item1, found, err := service.repository.FindByID(ctx, id1)
	if err != nil {
		return ComparisonResult{}, err
	}
	if !found {
		return ComparisonResult{}, notFound(id1)
	}

	item2, found, err := service.repository.FindByID(ctx, id2)
	if err != nil {
		return ComparisonResult{}, err
	}
	if !found {
		return ComparisonResult{}, notFound(id2)
	}

	if err := ValidatePrice(item1.Price); err != nil {
		return ComparisonResult{}, err
	}
	if err := ValidatePrice(item2.Price); err != nil {
		return ComparisonResult{}, err
	}
	if err := ValidateRating(item1.Rating); err != nil {
		return ComparisonResult{}, err
	}
	if err := ValidateRating(item2.Rating); err != nil {
		return ComparisonResult{}, err
	}

	// Mejor precio: el estrictamente menor.
	bestPriceItemID, bestPrice := id2, *item2.Price
	if item1.Price.Cmp(item2.Price.Decimal) < 0 {
		bestPriceItemID, bestPrice = id1, *item1.Price
	}

	// Mejor rating: el estrictamente mayor.
	bestRatedItemID, bestRating := id2, *item2.Rating
	if *item1.Rating > *item2.Rating {
		bestRatedItemID, bestRating = id1, *item1.Rating
	}

	// Diferencias en aritmética decimal exacta. El rating pasa por decimal
	// para que 4.8-4.2 reporte "0.6" y no el residuo binario del float.
	// La diferencia de precio conserva la escala de los operandos vía
	// Canonical: 150.00 - 100.00 es "50.00", no "50".
	priceDifference := NewDecimal(item1.Price.Sub(item2.Price.Decimal).Abs())
	ratingDifference := decimal.NewFromFloat(*item1.Rating).Sub(decimal.NewFromFloat(*item2.Rating)).Abs()

	return ComparisonResult{
		BestPriceItemID: bestPriceItemID,
		BestPrice:       bestPrice.InexactFloat64(),
		BestRatedItemID: bestRatedItemID,
		BestRating:      bestRating,
		Differences: map[string]string{
			"priceDifference":  priceDifference.Canonical(),
			"ratingDifference": ratingDifference.String(),
		},
	}, nil
}
