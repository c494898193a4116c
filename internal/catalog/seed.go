package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/msumanth960/epaper/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// document - формат YAML-файла каталога
type document struct {
	Regions   []models.Region   `yaml:"regions"`
	Editions  []models.Edition  `yaml:"editions"`
	Incidents []models.Incident `yaml:"incidents"`
}

// Default возвращает встроенный демонстрационный каталог
func Default() (*Catalog, error) {
	return Parse(seedYAML)
}

// Load читает каталог из YAML-файла
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	c, err := New(doc.Regions, doc.Editions, doc.Incidents)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}
