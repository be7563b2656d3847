package models

import "fmt"

// Product categories shown in the storefront sidebar
const (
	CategoryPhone    = "phone"
	CategoryNotebook = "notebook"
	CategoryMonitor  = "monitor"
)

// Product is a catalog entry; Price is in whole dollars as demoblaze shows it
type Product struct {
	ID          int
	Title       string
	Price       int64
	Description string
	Category    string
	ImageURL    string
}

// FormattedPrice returns the price the way the product page renders it
func (p Product) FormattedPrice() string {
	return fmt.Sprintf("$%d", p.Price)
}
