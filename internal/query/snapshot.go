// Package query extracts small structured values (cart counts, prices) from a
// rendered page whose markup is not guaranteed to stay stable.
//
// Each extraction is a Pipeline of named strategies, tried in order from the
// most exact to the most permissive. The first strategy that matches wins; if
// none match the pipeline yields the zero value. A miss is an expected outcome
// against a live page and is never reported as an error.
package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Snapshot is a parsed copy of a page's rendered markup
type Snapshot struct {
	root *html.Node
}

// Parse parses markup into a snapshot
func Parse(markup string) (*Snapshot, error) {
	return ParseReader(strings.NewReader(markup))
}

// ParseReader parses markup read from r into a snapshot
func ParseReader(r io.Reader) (*Snapshot, error) {
	root, err := htmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &Snapshot{root: root}, nil
}

// FromNode wraps an already parsed document
func FromNode(root *html.Node) *Snapshot {
	return &Snapshot{root: root}
}

// Root returns the document node
func (s *Snapshot) Root() *html.Node {
	return s.root
}

// Find returns the nodes matching an XPath expression in document order.
// It panics on a malformed expression.
func (s *Snapshot) Find(expr string) []*html.Node {
	return htmlquery.Find(s.root, expr)
}

// FindIn returns the nodes below n matching an XPath expression
func FindIn(n *html.Node, expr string) []*html.Node {
	return htmlquery.Find(n, expr)
}

// Text returns the snapshot's visible text with whitespace collapsed
func (s *Snapshot) Text() string {
	return Text(s.root)
}

// Text returns n's text content with runs of whitespace collapsed to one space
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(htmlquery.InnerText(n)), " ")
}

// Attr returns the value of n's attribute, or ""
func Attr(n *html.Node, name string) string {
	return htmlquery.SelectAttr(n, name)
}

// HasClass builds an XPath predicate body that matches elements carrying the
// whole class token, so "cart" does not match "cart-total".
func HasClass(class string) string {
	return fmt.Sprintf("contains(concat(' ', normalize-space(@class), ' '), ' %s ')", class)
}

// ByClass returns an XPath selecting every element with the class token
func ByClass(class string) string {
	return fmt.Sprintf("//*[%s]", HasClass(class))
}
