package actions

import (
	"embed"
	"fmt"

	"github.com/cleitonmarx/symbiont-ai-toolchat/internal/domain"
	"go.yaml.in/yaml/v3"
)

//go:embed catalog/tools.yml
var toolCatalog embed.FS

// catalogEntry is the YAML shape of one tool descriptor.
type catalogEntry struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Parameters  map[string]any `yaml:"parameters"`
}

// LoadCatalog reads the embedded tool descriptors in file order.
func LoadCatalog() ([]domain.ToolDescriptor, error) {
	file, err := toolCatalog.Open("catalog/tools.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open tool catalog: %w", err)
	}
	defer file.Close() //nolint:errcheck

	var entries []catalogEntry
	if err := yaml.NewDecoder(file).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode tool catalog: %w", err)
	}

	descriptors := make([]domain.ToolDescriptor, 0, len(entries))
	for _, e := range entries {
		d, err := domain.NewToolDescriptor(e.Name, e.Description, e.Parameters)
		if err != nil {
			return nil, fmt.Errorf("invalid tool catalog entry: %w", err)
		}
		descriptors = append(descriptors, d)
	}
	return descriptors, nil
}

// FindDescriptor returns the descriptor with the given name.
func FindDescriptor(catalog []domain.ToolDescriptor, name string) (domain.ToolDescriptor, error) {
	for _, d := range catalog {
		if d.Name == name {
			return d, nil
		}
	}
	return domain.ToolDescriptor{}, domain.NewUnknownToolErr(name)
}
