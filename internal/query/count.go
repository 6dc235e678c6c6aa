package query

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Strategy names of the cart count pipeline
const (
	StrategyHeaderCartLink     = "header-cart-link"
	StrategyExactCartText      = "exact-cart-text"
	StrategyCartLinkLastNumber = "cart-link-last-number"
)

var (
	exactCartPattern = regexp.MustCompile(`(?i)^shopping cart\s*\((\d+)\)$`)
	parenNumber      = regexp.MustCompile(`\((\d+)\)`)
)

var headerLinksXPath = "//*[" + HasClass("header-links") + " or " + HasClass("header") + "]//a | //header//a"

const (
	cartLinksXPath = "//a[contains(@href, '/cart')]"
	cartTextXPath  = "//body//text()[contains(translate(., 'CART', 'cart'), 'cart')]"

	// longer than "Shopping cart (" plus ten digits and ")"
	maxExactCartTextLen = 32
)

// CountStrategies returns the cart count strategies from most to least exact
func CountStrategies() []Strategy[int] {
	return []Strategy[int]{
		{Name: StrategyHeaderCartLink, Match: HeaderCartLink},
		{Name: StrategyExactCartText, Match: ExactCartText},
		{Name: StrategyCartLinkLastNumber, Match: CartLinkLastNumber},
	}
}

// HeaderCartLink matches a header link to the cart whose text is exactly
// "Shopping cart (N)".
func HeaderCartLink(s *Snapshot) (int, bool) {
	for _, a := range s.Find(headerLinksXPath) {
		text := Text(a)
		if !strings.Contains(Attr(a, "href"), "/cart") && !strings.Contains(strings.ToLower(text), "shopping cart") {
			continue
		}
		if n, ok := exactCartCount(text); ok {
			return n, true
		}
	}
	return 0, false
}

// ExactCartText matches any element whose whole text is "Shopping cart (N)",
// however deeply it is wrapped. Only ancestors of text nodes mentioning "cart"
// are considered, climbing until the text is too long to match.
func ExactCartText(s *Snapshot) (int, bool) {
	seen := make(map[*html.Node]bool)
	for _, t := range s.Find(cartTextXPath) {
		for el := t.Parent; el != nil && el.Type == html.ElementNode && el.Data != "body"; el = el.Parent {
			if seen[el] {
				break
			}
			seen[el] = true

			text := Text(el)
			if n, ok := exactCartCount(text); ok {
				return n, true
			}
			if len(text) > maxExactCartTextLen {
				break
			}
		}
	}
	return 0, false
}

// CartLinkLastNumber takes the last parenthesised number from any link to the
// cart whose text mentions "cart".
func CartLinkLastNumber(s *Snapshot) (int, bool) {
	for _, a := range s.Find(cartLinksXPath) {
		text := Text(a)
		if !strings.Contains(strings.ToLower(text), "cart") {
			continue
		}
		matches := parenNumber.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		if n, err := strconv.Atoi(matches[len(matches)-1][1]); err == nil {
			return n, true
		}
	}
	return 0, false
}

func exactCartCount(text string) (int, bool) {
	m := exactCartPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
