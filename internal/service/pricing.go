package service

import (
	"github.com/bobkin2-dev/projectbeheer/internal/entity"
)

// Discount types on order quotes.
const (
	KortingProcent = "procent"
	KortingBedrag  = "bedrag"
)

// OrderTotals is the computed quote breakdown of an order.
type OrderTotals struct {
	Subtotaal     float64 `json:"subtotaal"`
	KortingBedrag float64 `json:"korting_bedrag"`
	Totaal        float64 `json:"totaal"`
}

// CalculateOrderTotals computes subtotal, discount amount and total for
// a set of order lines. A percent discount scales with the subtotal, a
// fixed discount is taken verbatim. Values are not clamped: a discount
// larger than the subtotal yields a negative total.
func CalculateOrderTotals(items []entity.OrderItem, korting float64, kortingType string) OrderTotals {
	var subtotaal float64
	for _, item := range items {
		subtotaal += item.Aantal * item.PrijsPerEenheid
	}

	kortingBedrag := korting
	if kortingType == KortingProcent {
		kortingBedrag = subtotaal * (korting / 100)
	}

	return OrderTotals{
		Subtotaal:     subtotaal,
		KortingBedrag: kortingBedrag,
		Totaal:        subtotaal - kortingBedrag,
	}
}

// ResolvePrice derives the effective unit price from a catalog price and
// a discount percentage.
func ResolvePrice(catalogusprijs, korting float64) float64 {
	return catalogusprijs * (1 - korting/100)
}

// TemplatePrice sums the current library prices of a template's items.
func TemplatePrice(items []entity.TemplateItem) float64 {
	var total float64
	for _, item := range items {
		if item.Bibliotheek != nil {
			total += item.Bibliotheek.Prijs * item.Aantal
		}
	}
	return total
}
