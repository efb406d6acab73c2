package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Lelo88/items-api-golang/internal/items"
	"github.com/google/uuid"
)

// Seam para tests: permite fijar ids predecibles.
var newID = uuid.NewString

// JSONRepository persiste un archivo "<id>.json" por item dentro de un
// directorio. Implementa items.RepositoryAPI.
//
// Concurrencia: las escrituras se serializan con un mutex y se hacen vía
// archivo temporal + rename, así un registro nunca queda a medio escribir.
// Ante escrituras concurrentes al mismo id gana la última.
type JSONRepository struct {
	directory string
	mutex     sync.Mutex
}

// NewJSONRepository crea el directorio de datos si no existe.
func NewJSONRepository(directory string) (*JSONRepository, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory %q: %w", directory, err)
	}
	return &JSONRepository{directory: directory}, nil
}

// pathFor arma la ruta del archivo del item.
// Rechaza ids que escaparían del directorio de datos.
func (repository *JSONRepository) pathFor(id string) (string, error) {
	if filepath.Base(id) != id || id == "." || id == ".." {
		return "", fmt.Errorf("%w: item id %q is not storable", items.ErrorInvalidInput, id)
	}
	return filepath.Join(repository.directory, id+".json"), nil
}

// Save hace upsert del item. Si viene sin id, asigna un UUID y lo
// devuelve en el item retornado.
func (repository *JSONRepository) Save(ctx context.Context, item items.Item) (items.Item, error) {
	if strings.TrimSpace(item.ID) == "" {
		item = item.WithID(newID())
	}

	path, err := repository.pathFor(item.ID)
	if err != nil {
		return items.Item{}, err
	}

	// Pretty print: los archivos son también la herramienta de debugging.
	encoded, err := json.MarshalIndent(item, "", "  ")
	if err != nil {
		return items.Item{}, fmt.Errorf("encoding item %q: %w", item.ID, err)
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	temp, err := os.CreateTemp(repository.directory, "item-*.tmp")
	if err != nil {
		return items.Item{}, fmt.Errorf("saving item %q: %w", item.ID, err)
	}
	if _, err := temp.Write(encoded); err != nil {
		temp.Close()
		os.Remove(temp.Name())
		return items.Item{}, fmt.Errorf("saving item %q: %w", item.ID, err)
	}
	if err := temp.Close(); err != nil {
		os.Remove(temp.Name())
		return items.Item{}, fmt.Errorf("saving item %q: %w", item.ID, err)
	}
	if err := os.Rename(temp.Name(), path); err != nil {
		os.Remove(temp.Name())
		return items.Item{}, fmt.Errorf("saving item %q: %w", item.ID, err)
	}

	return item, nil
}

// FindByID devuelve found=false si el archivo no existe.
// Un id ausente no es un error del puerto.
func (repository *JSONRepository) FindByID(ctx context.Context, id string) (items.Item, bool, error) {
	path, err := repository.pathFor(id)
	if err != nil {
		return items.Item{}, false, err
	}

	encoded, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return items.Item{}, false, nil
	}
	if err != nil {
		return items.Item{}, false, fmt.Errorf("reading item %q: %w", id, err)
	}

	var item items.Item
	if err := json.Unmarshal(encoded, &item); err != nil {
		return items.Item{}, false, fmt.Errorf("decoding item %q: %w", id, err)
	}
	return item, true, nil
}

// DeleteByID borra el archivo del item; si no existe es un no-op.
func (repository *JSONRepository) DeleteByID(ctx context.Context, id string) error {
	path, err := repository.pathFor(id)
	if err != nil {
		return err
	}

	repository.mutex.Lock()
	defer repository.mutex.Unlock()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("deleting item %q: %w", id, err)
	}
	return nil
}

// Ping verifica que el directorio de datos siga accesible (para /ready).
func (repository *JSONRepository) Ping(ctx context.Context) error {
	info, err := os.Stat(repository.directory)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %q is not a directory", repository.directory)
	}
	return nil
}
