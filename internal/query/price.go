package query

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Strategy names of the price pipelines
const (
	StrategyPriceElement     = "price-element"
	StrategyFirstDollar      = "first-dollar-amount"
	StrategyOrderTotal       = "order-total"
	StrategyTotalRow         = "total-row"
	StrategyLastProductPrice = "last-product-price"
	StrategyLastDollar       = "last-dollar-amount"
)

var (
	// amounts are locale-fixed: "," groups thousands and "." separates cents
	dollarAmount = regexp.MustCompile(`\$\s*((?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?)`)
	bareAmount   = regexp.MustCompile(`(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`)
)

var priceClasses = []string{"product-unit-price", "unit-price", "product-price", "actual-price", "price"}

// ParsePrice reads the first amount in text. A "$"-prefixed amount wins over a
// bare number; currency symbols, thousands separators and wrapping parentheses
// are ignored.
func ParsePrice(text string) (float64, bool) {
	var raw string
	if m := dollarAmount.FindStringSubmatch(text); m != nil {
		raw = m[1]
	} else if m := bareAmount.FindString(text); m != "" {
		raw = m
	} else {
		return 0, false
	}

	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return roundCents(v), true
}

// FormatPrice renders an amount the way the shop displays it: $1,234.56
func FormatPrice(v float64) string {
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := strconv.FormatInt(cents/100, 10)

	var grouped strings.Builder
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}
	return sign + "$" + grouped.String() + "." + leftPad2(cents%100)
}

func leftPad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// PriceStrategies returns the strategies used to read a displayed price
func PriceStrategies() []Strategy[float64] {
	return []Strategy[float64]{
		{Name: StrategyPriceElement, Match: PriceElement},
		{Name: StrategyFirstDollar, Match: FirstDollarAmount},
	}
}

// TotalStrategies returns the strategies used to read the order total. The
// designated total element is preferred over any other price on the page.
func TotalStrategies() []Strategy[float64] {
	return []Strategy[float64]{
		{Name: StrategyOrderTotal, Match: OrderTotal},
		{Name: StrategyTotalRow, Match: TotalRow},
		{Name: StrategyLastProductPrice, Match: LastProductPrice},
		{Name: StrategyLastDollar, Match: LastDollarAmount},
	}
}

// PriceElement reads the first element carrying a price class
func PriceElement(s *Snapshot) (float64, bool) {
	for _, class := range priceClasses {
		if v, ok := firstParsable(s.Find(ByClass(class))); ok {
			return v, true
		}
	}
	return 0, false
}

// FirstDollarAmount reads the first "$" amount anywhere in the page text
func FirstDollarAmount(s *Snapshot) (float64, bool) {
	m := dollarAmount.FindStringSubmatch(bodyText(s))
	if m == nil {
		return 0, false
	}
	return ParsePrice(m[0])
}

// OrderTotal reads the element marked as the order total
func OrderTotal(s *Snapshot) (float64, bool) {
	for _, class := range []string{"order-total", "cart-total-amount", "total-price"} {
		if v, ok := firstParsable(s.Find(ByClass(class))); ok {
			return v, true
		}
	}
	return 0, false
}

// TotalRow reads the amount from a table row or list item labelled "Total"
// (but not "Sub-Total").
func TotalRow(s *Snapshot) (float64, bool) {
	for _, row := range s.Find("//tr | //li") {
		text := Text(row)
		label, rest, found := strings.Cut(text, ":")
		if !found || !strings.EqualFold(strings.TrimSpace(label), "total") {
			continue
		}
		if v, ok := ParsePrice(rest); ok {
			return v, true
		}
	}
	return 0, false
}

// LastProductPrice reads the last product price on the page, which the cart
// summary renders after every line item, falling back to the last cart-total
// element.
func LastProductPrice(s *Snapshot) (float64, bool) {
	for _, class := range []string{"product-price", "cart-total"} {
		nodes := s.Find(ByClass(class))
		for i := len(nodes) - 1; i >= 0; i-- {
			if v, ok := ParsePrice(Text(nodes[i])); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// LastDollarAmount reads the last "$" amount anywhere in the page text
func LastDollarAmount(s *Snapshot) (float64, bool) {
	matches := dollarAmount.FindAllString(bodyText(s), -1)
	if len(matches) == 0 {
		return 0, false
	}
	return ParsePrice(matches[len(matches)-1])
}

func firstParsable(nodes []*html.Node) (float64, bool) {
	for _, n := range nodes {
		if v, ok := ParsePrice(Text(n)); ok {
			return v, true
		}
	}
	return 0, false
}

func bodyText(s *Snapshot) string {
	if body := s.Find("//body"); len(body) > 0 {
		return Text(body[0])
	}
	return s.Text()
}
