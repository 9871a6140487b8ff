// Package catalog holds the immutable category and nominee slates for the
// awards night. The slates are compiled into the binary; there is no admin
// surface for editing them at runtime.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jmercer/awardpool/internal/models"
)

//go:embed catalog.json
var catalogJSON []byte

// Catalog is a parsed, ordered set of categories with fast lookup by ID.
type Catalog struct {
	categories []models.Category
	byID       map[string]*models.Category
}

// Load parses the embedded slates. Called once at startup.
func Load() (*Catalog, error) {
	return parse(catalogJSON)
}

func parse(data []byte) (*Catalog, error) {
	var categories []models.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		categories: categories,
		byID:       make(map[string]*models.Category, len(categories)),
	}
	for i := range c.categories {
		cat := &c.categories[i]
		if _, ok := c.byID[cat.ID]; ok {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		c.byID[cat.ID] = cat
	}
	return c, nil
}

// Categories returns all categories in broadcast order.
func (c *Catalog) Categories() []models.Category {
	return c.categories
}

// Get returns the category with the given ID.
func (c *Catalog) Get(categoryID string) (*models.Category, bool) {
	cat, ok := c.byID[categoryID]
	return cat, ok
}

// HasNominee reports whether nomineeID is on the slate for categoryID.
func (c *Catalog) HasNominee(categoryID, nomineeID string) bool {
	cat, ok := c.byID[categoryID]
	if !ok {
		return false
	}
	for _, n := range cat.Nominees {
		if n.ID == nomineeID {
			return true
		}
	}
	return false
}

// Total returns the number of categories.
func (c *Catalog) Total() int {
	return len(c.categories)
}
