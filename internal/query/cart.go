package query

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// CartLine is one product row of the cart table
type CartLine struct {
	Name      string
	UnitPrice float64
	Quantity  int
}

// Subtotal returns unit price times quantity, rounded to cents
func (l CartLine) Subtotal() float64 {
	return roundCents(l.UnitPrice * float64(l.Quantity))
}

var (
	cartRowsXPath = "//tr[" + HasClass("cart-item-row") + "] | " +
		ByClass("cart") + "//tr | " +
		ByClass("shopping-cart-table") + "//tr"
	unitPriceXPath = ".//*[" + HasClass("product-unit-price") + " or " + HasClass("unit-price") + " or " + HasClass("price") + "]"
	quantityXPath  = ".//input[" + HasClass("qty-input") + " or contains(@name, 'quantity') or contains(@name, 'itemquantity') or @type='number']"
	nameXPath      = ".//*[" + HasClass("product-name") + "] | .//*[" + HasClass("product") + "]//a"
	emptyCartXPath = ByClass("order-summary-content") + " | " + ByClass("cart-empty-text")
)

// cartRows returns the cart's table rows that are not headers
func cartRows(s *Snapshot) []*html.Node {
	var rows []*html.Node
	seen := make(map[*html.Node]bool)
	for _, tr := range s.Find(cartRowsXPath) {
		if seen[tr] || isHeaderRow(tr) {
			continue
		}
		seen[tr] = true
		rows = append(rows, tr)
	}
	return rows
}

func isHeaderRow(tr *html.Node) bool {
	if len(FindIn(tr, "./th")) > 0 {
		return true
	}
	return tr.Parent != nil && tr.Parent.Type == html.ElementNode && tr.Parent.Data == "thead"
}

// CartRowCount counts the cart's product rows, excluding header rows
func CartRowCount(s *Snapshot) int {
	return len(cartRows(s))
}

// CartLines reads name, unit price and quantity from each product row. Rows
// without a readable price are skipped; a missing quantity counts as 1.
func CartLines(s *Snapshot) []CartLine {
	var lines []CartLine
	for _, row := range cartRows(s) {
		price, ok := rowUnitPrice(row)
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			Name:      rowName(row),
			UnitPrice: price,
			Quantity:  rowQuantity(row),
		})
	}
	return lines
}

// CalculatedTotal sums unit price times quantity over the cart lines. It
// returns false when no line had a readable price.
func CalculatedTotal(s *Snapshot) (float64, bool) {
	lines := CartLines(s)
	if len(lines) == 0 {
		return 0, false
	}
	total := 0.0
	for _, l := range lines {
		total += l.Subtotal()
	}
	return roundCents(total), true
}

// IsEmptyCart reports whether the page shows the empty cart message
func IsEmptyCart(s *Snapshot) bool {
	for _, n := range s.Find(emptyCartXPath) {
		if strings.Contains(strings.ToLower(Text(n)), "cart is empty") {
			return true
		}
	}
	return false
}

func rowUnitPrice(row *html.Node) (float64, bool) {
	if v, ok := firstParsable(FindIn(row, unitPriceXPath)); ok {
		return v, true
	}
	for _, td := range FindIn(row, "./td") {
		if text := Text(td); strings.Contains(text, "$") {
			if v, ok := ParsePrice(text); ok {
				return v, true
			}
		}
	}
	return 0, false
}

func rowQuantity(row *html.Node) int {
	for _, input := range FindIn(row, quantityXPath) {
		if n, err := strconv.Atoi(strings.TrimSpace(Attr(input, "value"))); err == nil && n > 0 {
			return n
		}
	}
	for _, qty := range FindIn(row, ".//*["+HasClass("qty")+"]") {
		if n, err := strconv.Atoi(Text(qty)); err == nil && n > 0 {
			return n
		}
	}
	return 1
}

func rowName(row *html.Node) string {
	if names := FindIn(row, nameXPath); len(names) > 0 {
		return Text(names[0])
	}
	return ""
}
