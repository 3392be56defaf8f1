// Package catalog holds the static reward configuration: achievement rules,
// badge definitions, subscription packages and shop products. A Catalog is
// built once at startup and passed to the services that consume it; nothing
// in here is mutated at runtime, so it is safe for concurrent readers.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

type Catalog struct {
	Achievements []AchievementRule
	Badges       []Badge
	Packages     []Package
	Products     []Product
}

// Package returns the subscription package with the given id, or nil if the
// id is unknown (a catalog miss, not an error).
func (c *Catalog) Package(id string) *Package {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i]
		}
	}
	return nil
}

// Product returns the shop product with the given id, or nil.
func (c *Catalog) Product(id string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// Default builds the production catalog.
func Default() *Catalog {
	return &Catalog{
		Achievements: defaultAchievements(),
		Badges:       defaultBadges(),
		Packages:     defaultPackages(),
		Products:     defaultProducts(),
	}
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
