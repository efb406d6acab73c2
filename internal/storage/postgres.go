package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Lelo88/items-api-golang/internal/items"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Database es lo mínimo que el repositorio necesita del pool.
// *pgxpool.Pool lo satisface; los tests usan un fake.
type Database interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresRepository implementa items.RepositoryAPI sobre una tabla items.
//
// Esquema esperado:
//
//	CREATE TABLE items (
//	    id            text PRIMARY KEY DEFAULT gen_random_uuid()::text,
//	    name          text NOT NULL,
//	    image_url     text,
//	    description   text,
//	    price         numeric,
//	    rating        double precision,
//	    specification jsonb
//	);
type PostgresRepository struct {
	database Database
}

// NewPostgresRepository crea un repositorio de items sobre PostgreSQL.
func NewPostgresRepository(database Database) *PostgresRepository {
	return &PostgresRepository{database: database}
}

// Save hace upsert por id. Sin id, la DB genera uno y lo devolvemos
// vía RETURNING (mismo truco que usar timestamps generados por DB).
func (repository *PostgresRepository) Save(ctx context.Context, item items.Item) (items.Item, error) {
	price := encodePrice(item.Price)
	specification, err := encodeSpecification(item.Specification)
	if err != nil {
		return items.Item{}, err
	}

	if strings.TrimSpace(item.ID) == "" {
		const query = `
			INSERT INTO items (name, image_url, description, price, rating, specification)
			VALUES ($1, $2, $3, $4::numeric, $5, $6)
			RETURNING id;
		`
		var id string
		err := repository.database.QueryRow(ctx, query,
			item.Name, item.ImageURL, item.Description, price, item.Rating, specification).
			Scan(&id)
		if err != nil {
			return items.Item{}, fmt.Errorf("inserting item: %w", err)
		}
		return item.WithID(id), nil
	}

	const query = `
		INSERT INTO items (id, name, image_url, description, price, rating, specification)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			image_url = EXCLUDED.image_url,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			rating = EXCLUDED.rating,
			specification = EXCLUDED.specification;
	`
	if _, err := repository.database.Exec(ctx, query,
		item.ID, item.Name, item.ImageURL, item.Description, price, item.Rating, specification); err != nil {
		return items.Item{}, fmt.Errorf("upserting item %q: %w", item.ID, err)
	}
	return item, nil
}

// FindByID devuelve found=false cuando no hay fila.
func (repository *PostgresRepository) FindByID(ctx context.Context, id string) (items.Item, bool, error) {
	const query = `
		SELECT id, name, image_url, description, price::text, rating, specification
		FROM items
		WHERE id = $1;
	`

	var (
		item          items.Item
		price         *string
		specification []byte
	)
	err := repository.database.QueryRow(ctx, query, id).
		Scan(&item.ID, &item.Name, &item.ImageURL, &item.Description, &price, &item.Rating, &specification)
	if errors.Is(err, pgx.ErrNoRows) {
		return items.Item{}, false, nil
	}
	if err != nil {
		return items.Item{}, false, fmt.Errorf("reading item %q: %w", id, err)
	}

	if price != nil {
		parsed, err := items.NewDecimalFromString(*price)
		if err != nil {
			return items.Item{}, false, fmt.Errorf("decoding price of item %q: %w", id, err)
		}
		item.Price = &parsed
	}
	if specification != nil {
		var spec items.Specification
		if err := json.Unmarshal(specification, &spec); err != nil {
			return items.Item{}, false, fmt.Errorf("decoding specification of item %q: %w", id, err)
		}
		item.Specification = &spec
	}

	return item, true, nil
}

// DeleteByID borra la fila; si no existe es un no-op.
func (repository *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	const query = `DELETE FROM items WHERE id = $1;`

	if _, err := repository.database.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("deleting item %q: %w", id, err)
	}
	return nil
}

// encodePrice serializa el precio como texto para el cast ::numeric.
// Usa la forma canónica para que la escala llegue a la columna numeric
// ("100.00" viaja como "100.00"). nil se guarda como NULL (un update
// puede traer precio ausente).
func encodePrice(price *items.Decimal) *string {
	if price == nil {
		return nil
	}
	value := price.Canonical()
	return &value
}

// encodeSpecification serializa la specification como jsonb.
func encodeSpecification(specification *items.Specification) ([]byte, error) {
	if specification == nil {
		return nil, nil
	}
	encoded, err := json.Marshal(specification)
	if err != nil {
		return nil, fmt.Errorf("encoding specification: %w", err)
	}
	return encoded, nil
}
