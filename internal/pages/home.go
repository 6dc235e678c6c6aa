package pages

import "net/url"

const (
	productTiles     = ".product-item"
	topMenu          = ".top-menu"
	footer           = ".footer"
	searchResultRows = ".search-results .product-item"
	noSearchResults  = ".search-results .result"
)

// HomePage is the shop's landing page. Search results render on the same layout.
type HomePage struct {
	*Base
	Header *Header
}

// NewHomePage creates the home page object
func NewHomePage(base *Base, header *Header) *HomePage {
	return &HomePage{Base: base, Header: header}
}

// Open navigates to the landing page
func (p *HomePage) Open() error {
	return p.Navigate("/")
}

// FeaturedProductCount counts the product tiles on the page
func (p *HomePage) FeaturedProductCount() (int, error) {
	return p.page.Locator(productTiles).Count()
}

// MissingElements returns the names of layout elements that are not visible
func (p *HomePage) MissingElements() ([]string, error) {
	var missing []string
	for _, el := range []struct{ name, selector string }{
		{"search box", searchBox},
		{"navigation menu", topMenu},
		{"footer", footer},
	} {
		visible, err := p.IsVisible(el.selector)
		if err != nil {
			return nil, err
		}
		if !visible {
			missing = append(missing, el.name)
		}
	}
	return missing, nil
}

// Search submits term through the header search box
func (p *HomePage) Search(term string) error {
	return p.Header.Search(term)
}

// SearchedTerm returns the q parameter of the current search URL
func (p *HomePage) SearchedTerm() string {
	u, err := url.Parse(p.URL())
	if err != nil {
		return ""
	}
	return u.Query().Get("q")
}

// SearchResultCount counts the products listed on a search results page
func (p *HomePage) SearchResultCount() (int, error) {
	return p.page.Locator(searchResultRows).Count()
}

// NoSearchResults reports whether the results page says nothing matched
func (p *HomePage) NoSearchResults() (bool, error) {
	return p.Exists(noSearchResults)
}
