package profile

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CategoryOrder declares the display order of catalog categories.
type CategoryOrder struct {
	rank map[string]int
}

type categoryOrderFile struct {
	Categories []string `yaml:"categories"`
}

// NewCategoryOrder builds an order from category keys. Blank and repeated
// keys are ignored.
func NewCategoryOrder(names ...string) CategoryOrder {
	rank := make(map[string]int, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		if _, seen := rank[name]; seen {
			continue
		}
		rank[name] = len(rank)
	}
	return CategoryOrder{rank: rank}
}

// ParseCategoryOrder decodes a YAML document of the form
// `categories: [music, games]`.
func ParseCategoryOrder(data []byte) (CategoryOrder, error) {
	var file categoryOrderFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return CategoryOrder{}, fmt.Errorf("parse category order: %w", err)
	}
	return NewCategoryOrder(file.Categories...), nil
}

// LoadCategoryOrder reads a category order file. An empty path yields the
// catalog's own order.
func LoadCategoryOrder(path string) (CategoryOrder, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return CategoryOrder{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return CategoryOrder{}, fmt.Errorf("read category order %s: %w", path, err)
	}
	return ParseCategoryOrder(data)
}

// Len returns the number of declared categories.
func (o CategoryOrder) Len() int {
	return len(o.rank)
}

// Arrange returns categories sorted by declared rank, keeping the incoming
// order for undeclared ones after the declared block.
func (o CategoryOrder) Arrange(categories []Category) []Category {
	if len(o.rank) == 0 || len(categories) < 2 {
		return categories
	}
	arranged := make([]Category, len(categories))
	copy(arranged, categories)
	sort.SliceStable(arranged, func(i, j int) bool {
		ri, iok := o.rank[arranged[i].Name]
		rj, jok := o.rank[arranged[j].Name]
		switch {
		case iok && jok:
			return ri < rj
		case iok:
			return true
		default:
			return false
		}
	})
	return arranged
}
