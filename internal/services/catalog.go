package services

import (
	"errors"
	"sort"

	"github.com/demoblaze/storefront-e2e/internal/models"
)

// ErrUnknownProduct is returned for product ids missing from the catalog
var ErrUnknownProduct = errors.New("unknown product")

// Catalog is the fixed, read-only product list of the storefront
type Catalog struct {
	products []models.Product
	byID     map[int]models.Product
}

// NewCatalog creates a catalog ordered by product id
func NewCatalog(products []models.Product) *Catalog {
	c := &Catalog{
		products: append([]models.Product(nil), products...),
		byID:     make(map[int]models.Product, len(products)),
	}
	sort.Slice(c.products, func(i, j int) bool { return c.products[i].ID < c.products[j].ID })
	for _, p := range c.products {
		c.byID[p.ID] = p
	}
	return c
}

// DefaultCatalog returns the demoblaze product list
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.Product{
		{ID: 1, Title: "Samsung galaxy s6", Price: 360, Category: models.CategoryPhone, ImageURL: "imgs/galaxy_s6.jpg",
			Description: "The Samsung Galaxy S6 is powered by 1.5GHz octa-core Samsung Exynos 7420 processor and it comes with 3GB of RAM."},
		{ID: 2, Title: "Nokia lumia 1520", Price: 820, Category: models.CategoryPhone, ImageURL: "imgs/Lumia_1520.jpg",
			Description: "The Nokia Lumia 1520 is powered by 2.2GHz quad-core Qualcomm Snapdragon 800 processor and it comes with 2GB of RAM."},
		{ID: 3, Title: "Nexus 6", Price: 650, Category: models.CategoryPhone, ImageURL: "imgs/Nexus_6.jpg",
			Description: "The Motorola Google Nexus 6 is powered by 2.7GHz quad-core Qualcomm Snapdragon 805 processor and it comes with 3GB of RAM."},
		{ID: 4, Title: "Samsung galaxy s7", Price: 800, Category: models.CategoryPhone, ImageURL: "imgs/galaxy_s7.jpg",
			Description: "The Samsung Galaxy S7 is powered by 1.6GHz octa-core it comes with 4GB of RAM."},
		{ID: 5, Title: "Iphone 6 32gb", Price: 790, Category: models.CategoryPhone, ImageURL: "imgs/iphone_6.jpg",
			Description: "It comes with 1GB of RAM. The phone packs 16GB of internal storage cannot be expanded."},
		{ID: 6, Title: "Sony xperia z5", Price: 320, Category: models.CategoryPhone, ImageURL: "imgs/xperia_z5.jpg",
			Description: "Sony Xperia Z5 Dual smartphone was launched in September 2015. The phone comes with a 5.20-inch touchscreen display."},
		{ID: 7, Title: "HTC One M9", Price: 700, Category: models.CategoryPhone, ImageURL: "imgs/HTC_M9.jpg",
			Description: "The HTC One M9 is powered by 1.5GHz octa-core Qualcomm Snapdragon 810 processor and it comes with 3GB of RAM."},
		{ID: 8, Title: "Sony vaio i5", Price: 790, Category: models.CategoryNotebook, ImageURL: "imgs/sony_vaio_5.jpg",
			Description: "Sony is so confident that the VAIO S is a superior ultraportable laptop."},
		{ID: 9, Title: "Sony vaio i7", Price: 790, Category: models.CategoryNotebook, ImageURL: "imgs/sony_vaio_5.jpg",
			Description: "REVIEW Sony is so confident that the VAIO S is a superior ultraportable laptop."},
		{ID: 10, Title: "Apple monitor 24", Price: 400, Category: models.CategoryMonitor, ImageURL: "imgs/apple_cinema.jpg",
			Description: "LED Cinema Display features a 27-inch glossy LED-backlit TFT active-matrix LCD display."},
		{ID: 11, Title: "MacBook air", Price: 700, Category: models.CategoryNotebook, ImageURL: "imgs/macbook_air.jpg",
			Description: "1.6GHz dual-core Intel Core i5 (Turbo Boost up to 2.7GHz) with 3MB shared L3 cache."},
		{ID: 12, Title: "Dell i7 8gb", Price: 700, Category: models.CategoryNotebook, ImageURL: "imgs/dell.jpg",
			Description: "6th Generation Intel Core i7-6500U processor, 8GB memory."},
		{ID: 13, Title: "2017 Dell 15.6 Inch", Price: 700, Category: models.CategoryNotebook, ImageURL: "imgs/dell2.jpg",
			Description: "7th Gen Intel Core i7-7500U mobile processor 2.70 GHz with Turbo Boost Technology up to 3.50 GHz."},
		{ID: 14, Title: "ASUS Full HD", Price: 230, Category: models.CategoryMonitor, ImageURL: "imgs/asusm.jpg",
			Description: "ASUS VS247H-P 23.6- Inch Full HD."},
		{ID: 15, Title: "MacBook Pro", Price: 1100, Category: models.CategoryNotebook, ImageURL: "imgs/macbook_pro.jpg",
			Description: "Apple has introduced three new versions of its MacBook Pro line."},
	})
}

// List returns products in the given category, or all products when category is empty
func (c *Catalog) List(category string) []models.Product {
	if category == "" {
		return append([]models.Product(nil), c.products...)
	}
	var out []models.Product
	for _, p := range c.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Get returns a product by id
func (c *Catalog) Get(id int) (models.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return models.Product{}, ErrUnknownProduct
	}
	return p, nil
}
