package datagen

// TestCard is a card number the shop's payment sandbox accepts without a real account
type TestCard struct {
	Number      string
	Brand       string
	Description string
}

// TestCards is the allow-list card numbers are drawn from. Every entry passes the
// Luhn check so the checkout's client-side validation accepts it.
var TestCards = []TestCard{
	{Number: "4111111111111111", Brand: "Visa", Description: "approved"},
	{Number: "5555555555554444", Brand: "Mastercard", Description: "approved"},
	{Number: "378282246310005", Brand: "American Express", Description: "approved"},
	{Number: "4000000000000002", Brand: "Visa", Description: "declined"},
}

// InvalidCardNumber fails the Luhn check
const InvalidCardNumber = "1234567890123456"

// DefaultPassword is the password every generated user registers with
const DefaultPassword = "Test123!"

var searchTerms = []string{"laptop", "book", "phone", "camera", "watch", "headphones"}

var emailDomains = []string{"example.com", "example.net", "example.org", "mailinator.test"}

var secondaryUnits = []string{"Apt.", "Suite", "Unit", "Floor"}

const alnum = "abcdefghijklmnopqrstuvwxyz0123456789"

// InvalidInputs is a fixed table of hostile and edge-case strings for form fields
type InvalidInputs struct {
	InvalidEmail  string
	ShortPassword string
	EmptyString   string
	LongString    string
	SpecialChars  string
	SQLInjection  string
	XSSScript     string
}
