package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/yuva-embroidery/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

// Loader reads a product file into a Static provider.
type Loader struct {
	path string
}

func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load detects the format from the file extension.
func (l *Loader) Load() (*Static, error) {
	ext := strings.ToLower(filepath.Ext(l.path))

	var (
		products []models.Product
		err      error
	)
	switch ext {
	case ".parquet":
		products, err = l.loadParquet()
	case ".yaml", ".yml":
		products, err = l.loadYAML()
	case ".json":
		products, err = l.loadJSON()
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .parquet, .yaml, .json)", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validate(products); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", l.path, err)
	}

	slog.Debug("Catalog loaded", "path", l.path, "products", len(products))
	return NewStatic(products), nil
}

func (l *Loader) loadYAML() ([]models.Product, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	var doc struct {
		Products []models.Product `yaml:"products"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}
	return doc.Products, nil
}

func (l *Loader) loadJSON() ([]models.Product, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return products, nil
}

func (l *Loader) loadParquet() ([]models.Product, error) {
	file, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[models.Product](pf)
	defer reader.Close()

	var products []models.Product
	rows := make([]models.Product, 128)
	for {
		n, err := reader.Read(rows)
		products = append(products, rows[:n]...)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}
	return products, nil
}

func validate(products []models.Product) error {
	seen := make(map[int]bool, len(products))
	for _, p := range products {
		if p.Price < 0 {
			return fmt.Errorf("product %d has negative price %d", p.ID, p.Price)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Write stores products at path in the format named by its extension, in
// the layout Load reads back.
func Write(path string, products []models.Product) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".parquet":
		return WriteParquet(path, products)
	case ".yaml", ".yml":
		data, err := yaml.Marshal(struct {
			Products []models.Product `yaml:"products"`
		}{Products: products})
		if err != nil {
			return fmt.Errorf("failed to encode catalog YAML: %w", err)
		}
		return writeFile(path, data)
	case ".json":
		data, err := json.MarshalIndent(products, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode catalog JSON: %w", err)
		}
		return writeFile(path, data)
	default:
		return fmt.Errorf("unsupported catalog format: %s (supported: .parquet, .yaml, .json)", ext)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	return nil
}

// WriteParquet stores products in the layout loadParquet reads.
func WriteParquet(path string, products []models.Product) error {
	if err := parquet.WriteFile(path, products); err != nil {
		return fmt.Errorf("failed to write parquet catalog: %w", err)
	}
	return nil
}
