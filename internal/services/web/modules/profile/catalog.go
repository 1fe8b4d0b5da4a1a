package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Interest is one catalog tag a user can select.
type Interest struct {
	ID       int64
	Name     string
	Category string
}

// Category groups catalog interests under one category key.
type Category struct {
	// Name is the category key exactly as the catalog returned it.
	Name      string
	Title     string
	Interests []Interest
}

// Catalog is the interest catalog grouped by category.
type Catalog struct {
	Categories []Category
}

// Len returns the number of interests across all categories.
func (c Catalog) Len() int {
	total := 0
	for _, category := range c.Categories {
		total += len(category.Interests)
	}
	return total
}

// Empty reports whether the catalog has no interests.
func (c Catalog) Empty() bool {
	return c.Len() == 0
}

// GroupCatalog groups interests by category. Categories named in order come
// first in that order; the rest follow in first-seen order. Interests keep
// catalog order inside each category.
func GroupCatalog(interests []Interest, order CategoryOrder) Catalog {
	if len(interests) == 0 {
		return Catalog{}
	}
	index := make(map[string]int)
	categories := make([]Category, 0)
	for _, interest := range interests {
		idx, ok := index[interest.Category]
		if !ok {
			idx = len(categories)
			index[interest.Category] = idx
			categories = append(categories, Category{
				Name:  interest.Category,
				Title: CategoryTitle(interest.Category),
			})
		}
		categories[idx].Interests = append(categories[idx].Interests, interest)
	}
	return Catalog{Categories: order.Arrange(categories)}
}

// CategoryTitle upper-cases the first rune of name and leaves the rest as is.
func CategoryTitle(name string) string {
	if name == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(name)
	if first == utf8.RuneError {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	b.WriteRune(unicode.ToUpper(first))
	b.WriteString(name[size:])
	return b.String()
}
