package pages

import (
	"errors"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePage serves canned markup. Methods it does not override panic through
// the nil embedded interface.
type fakePage struct {
	playwright.Page
	content string
	url     string
	visited []string
	timeout float64
	gotoErr error

	expected        []any
	responseTimeout float64
	response        playwright.Response
}

func (f *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	f.visited = append(f.visited, url)
	if len(options) > 0 && options[0].Timeout != nil {
		f.timeout = *options[0].Timeout
	}
	if f.gotoErr != nil {
		return nil, f.gotoErr
	}
	f.url = url
	return nil, nil
}

func (f *fakePage) Content() (string, error) {
	return f.content, nil
}

func (f *fakePage) URL() string {
	return f.url
}

func (f *fakePage) ExpectResponse(urlOrPredicate any, cb func() error, options ...playwright.PageExpectResponseOptions) (playwright.Response, error) {
	f.expected = append(f.expected, urlOrPredicate)
	if len(options) > 0 && options[0].Timeout != nil {
		f.responseTimeout = *options[0].Timeout
	}
	return f.response, nil
}

// fakeResponse answers only the status methods
type fakeResponse struct {
	playwright.Response
	status int
}

func (r fakeResponse) Ok() bool    { return r.status >= 200 && r.status < 300 }
func (r fakeResponse) Status() int { return r.status }

func newFakeBase(content string) (*Base, *fakePage) {
	fp := &fakePage{content: content}
	return NewBase(fp, "https://shop.test/", 2500*time.Millisecond, nil), fp
}

var _ Page = (*Base)(nil)
var _ Page = (*CartPage)(nil)

func TestResolve(t *testing.T) {
	base, _ := newFakeBase("")

	tests := map[string]string{
		"":                    "https://shop.test/",
		"/":                   "https://shop.test/",
		"/cart":               "https://shop.test/cart",
		"register":            "https://shop.test/register",
		"https://other.test/": "https://other.test/",
	}
	for path, want := range tests {
		assert.Equal(t, want, base.Resolve(path), path)
	}
}

func TestNavigate(t *testing.T) {
	base, fp := newFakeBase("")

	require.NoError(t, base.Navigate("/login"))

	assert.Equal(t, []string{"https://shop.test/login"}, fp.visited)
	assert.Equal(t, "https://shop.test/login", base.URL())
	assert.Equal(t, 2500.0, fp.timeout)
}

func TestNavigateError(t *testing.T) {
	base, fp := newFakeBase("")
	fp.gotoErr = errors.New("net::ERR_NAME_NOT_RESOLVED")

	err := base.Navigate("/cart")

	require.Error(t, err)
	assert.ErrorIs(t, err, fp.gotoErr)
	assert.Contains(t, err.Error(), "https://shop.test/cart")
}

func TestHeaderCartCount(t *testing.T) {
	base, _ := newFakeBase(`<html><body><div class="header-links">
		<a href="/cart" class="ico-cart"><span class="cart-label">Shopping cart</span> <span class="cart-qty">(5)</span></a>
		</div></body></html>`)

	count, err := NewHeader(base, nil).CartCount()

	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestHeaderCartCountMissing(t *testing.T) {
	base, _ := newFakeBase(`<html><body><p>maintenance</p></body></html>`)

	count, err := NewHeader(base, nil).CartCount()

	require.NoError(t, err)
	assert.Zero(t, count)
}

const cartPageMarkup = `<html><body>
<table class="cart">
  <thead><tr><th>Product</th><th>Price</th><th>Qty.</th></tr></thead>
  <tbody>
    <tr class="cart-item-row">
      <td class="product"><a href="/fiction">Fiction</a></td>
      <td class="unit-price"><span class="product-unit-price">24.00</span></td>
      <td class="qty"><input class="qty-input" name="itemquantity11" value="3"></td>
    </tr>
  </tbody>
</table>
<table class="cart-total"><tr><td>Total:</td><td><span class="product-price order-total">72.00</span></td></tr></table>
</body></html>`

func TestCartPage(t *testing.T) {
	base, _ := newFakeBase(cartPageMarkup)
	cart := NewCartPage(base, nil)

	rows, err := cart.ItemRows()
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	found, err := cart.Contains("fiction")
	require.NoError(t, err)
	assert.True(t, found)

	empty, err := cart.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	summary, err := cart.Summary()
	require.NoError(t, err)
	require.NotNil(t, summary.Total)
	require.NotNil(t, summary.CalculatedTotal)
	assert.InDelta(t, 72.0, *summary.Total, 0.001)
	assert.InDelta(t, *summary.Total, *summary.CalculatedTotal, 0.001)
}

func TestProductPagePrice(t *testing.T) {
	base, _ := newFakeBase(`<html><body><div class="product-price"><span>$1,590.00</span></div></body></html>`)

	price, ok, err := NewProductPage(base, nil).Price()

	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 1590.0, price, 0.001)
}

func TestProductPageRejectsZeroQuantity(t *testing.T) {
	base, _ := newFakeBase("")

	err := NewProductPage(base, nil).AddToCart(0)

	assert.Error(t, err)
}

func TestHomePageSearchedTerm(t *testing.T) {
	base, fp := newFakeBase("")
	home := NewHomePage(base, NewHeader(base, nil))

	tests := map[string]string{
		"https://shop.test/search?q=laptop":         "laptop",
		"https://shop.test/search?q=leather+wallet": "leather wallet",
		"https://shop.test/":                        "",
	}
	for current, want := range tests {
		fp.url = current
		assert.Equal(t, want, home.SearchedTerm(), current)
	}
}

func TestAddToCartWaitsWithRequestTimeout(t *testing.T) {
	base, fp := newFakeBase("")
	fp.response = fakeResponse{status: 200}
	product := NewProductPage(base, nil)

	// GIVEN no request timeout, the page timeout applies
	require.NoError(t, product.AddToCart(1))
	assert.Equal(t, 2500.0, fp.responseTimeout)

	// WHEN a request timeout is configured
	base.SetRequestTimeout(4 * time.Second)
	base.SetRequestTimeout(0)
	require.NoError(t, product.AddToCart(1))

	// THEN the add-to-cart wait uses it
	assert.Equal(t, 4000.0, fp.responseTimeout)
	assert.Equal(t, []any{addToCartURLPattern, addToCartURLPattern}, fp.expected)
}

func TestAddToCartRejectedByShop(t *testing.T) {
	base, fp := newFakeBase("")
	fp.response = fakeResponse{status: 500}

	err := NewProductPage(base, nil).AddToCart(1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
