// Package datagen produces realistic fake form data for the shop's test flows.
//
// A Generator is an explicit state object: seeding one makes its output
// sequence reproducible without affecting any other generator. Every random
// decision goes through the generator's own math/rand source, never through
// crypto/rand or the package-level math/rand functions.
package datagen

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopqa/storefront/internal/models"
)

// Generator errors
var (
	ErrInvalidRange = errors.New("min must not exceed max")
	ErrNegativeSize = errors.New("sample size must not be negative")
)

// Generator produces fake values. It is not safe for concurrent use; give each
// test its own instance.
type Generator struct {
	faker  *gofakeit.Faker
	seed   int64
	seeded bool
	now    func() time.Time
}

// Option configures a Generator
type Option func(*Generator)

// WithClock sets the clock used for date-relative values such as card expiry
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.now = now
	}
}

// New creates an unseeded, non-deterministic generator
func New(opts ...Option) *Generator {
	g := &Generator{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	g.ResetSeed()
	return g
}

// NewSeeded creates a generator whose output is fully determined by seed
func NewSeeded(seed int64, opts ...Option) *Generator {
	g := New(opts...)
	g.Seed(seed)
	return g
}

// DeriveSeed mixes label into base. Callers sharing one configured seed get
// distinct sequences per label that are still reproducible across runs.
func DeriveSeed(base int64, label string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(base))
	h.Write(buf[:])
	h.Write([]byte(label))
	return int64(h.Sum64())
}

// Seed makes every subsequent call reproduce the sequence of any other
// generator seeded with the same value.
func (g *Generator) Seed(seed int64) {
	g.faker = gofakeit.NewCustom(rand.NewSource(seed).(rand.Source64))
	g.seed = seed
	g.seeded = true
}

// ResetSeed returns the generator to non-deterministic output
func (g *Generator) ResetSeed() {
	// gofakeit seeds from crypto/rand when given 0
	g.faker = gofakeit.New(0)
	g.seed = 0
	g.seeded = false
}

// CurrentSeed returns the active seed and whether one is set
func (g *Generator) CurrentSeed() (int64, bool) {
	return g.seed, g.seeded
}

// Now returns the generator's clock reading
func (g *Generator) Now() time.Time {
	return g.now()
}

// FirstName returns a random given name
func (g *Generator) FirstName() string {
	return g.faker.FirstName()
}

// LastName returns a random family name
func (g *Generator) LastName() string {
	return g.faker.LastName()
}

// FullName returns "First Last"
func (g *Generator) FullName() string {
	return g.FirstName() + " " + g.LastName()
}

// Gender picks Male or Female
func (g *Generator) Gender() models.Gender {
	if g.Bool() {
		return models.GenderFemale
	}
	return models.GenderMale
}

// Email returns a lowercase address built from a fresh random name
func (g *Generator) Email() string {
	return g.EmailFor(g.FirstName(), g.LastName())
}

// EmailFor returns first.last.<suffix>@domain. The six-character random suffix
// keeps local parts unique across calls.
func (g *Generator) EmailFor(first, last string) string {
	local := emailSafe(first)
	if l := emailSafe(last); l != "" {
		if local != "" {
			local += "."
		}
		local += l
	}
	if local == "" {
		local = "user"
	}
	return local + "." + g.alnumN(6) + "@" + Pick(g, emailDomains)
}

var nonEmailChars = regexp.MustCompile(`[^a-z0-9]+`)

func emailSafe(s string) string {
	return nonEmailChars.ReplaceAllString(strings.ToLower(s), "")
}

// Password returns a 12-character password with lower, upper, digit and symbol
func (g *Generator) Password() string {
	return g.faker.Password(true, true, true, true, false, 12)
}

// Company returns a company name
func (g *Generator) Company() string {
	return g.faker.Company()
}

// State returns a US state name
func (g *Generator) State() string {
	return g.faker.State()
}

// City returns a city name
func (g *Generator) City() string {
	return g.faker.City()
}

// StreetAddress returns a house number and street
func (g *Generator) StreetAddress() string {
	return g.faker.Street()
}

// SecondaryAddress returns an apartment or suite line like "Suite 410"
func (g *Generator) SecondaryAddress() string {
	return fmt.Sprintf("%s %d", Pick(g, secondaryUnits), 1+g.faker.Rand.Intn(999))
}

// ZipCode returns NNNNN or, one time in four, NNNNN-NNNN
func (g *Generator) ZipCode() string {
	zip := fmt.Sprintf("%05d", g.faker.Rand.Intn(100000))
	if g.faker.Rand.Intn(4) == 0 {
		zip += fmt.Sprintf("-%04d", g.faker.Rand.Intn(10000))
	}
	return zip
}

// PhoneNumber returns a fictional US number: (555) XXX-XXXX
func (g *Generator) PhoneNumber() string {
	prefix := 100 + g.faker.Rand.Intn(900)
	line := g.faker.Rand.Intn(10000)
	return fmt.Sprintf("(555) %03d-%04d", prefix, line)
}

// CardNumber draws a number from the TestCards allow-list
func (g *Generator) CardNumber() string {
	return Pick(g, TestCards).Number
}

// CVV returns a three-digit security code
func (g *Generator) CVV() string {
	return fmt.Sprintf("%03d", g.faker.Rand.Intn(1000))
}

// ExpiryDate returns a month and a year one to three years after the current year
func (g *Generator) ExpiryDate() (month, year int) {
	month = 1 + g.faker.Rand.Intn(12)
	year = g.now().Year() + 1 + g.faker.Rand.Intn(3)
	return month, year
}

// Sentence returns a lorem sentence of six to twelve words
func (g *Generator) Sentence() string {
	return g.faker.Sentence(6 + g.faker.Rand.Intn(7))
}

// Words returns n space-separated lorem words
func (g *Generator) Words(n int) string {
	if n <= 0 {
		return ""
	}
	words := make([]string, n)
	for i := range words {
		words[i] = g.faker.LoremIpsumWord()
	}
	return strings.Join(words, " ")
}

// SearchTerm picks a term that matches products in the shop's catalog
func (g *Generator) SearchTerm() string {
	return Pick(g, searchTerms)
}

// UniqueID returns "test_" followed by a UUID drawn from the generator's source
func (g *Generator) UniqueID() string {
	id, err := uuid.NewRandomFromReader(g.faker.Rand)
	if err != nil {
		// math/rand.Read never fails
		panic("datagen: " + err.Error())
	}
	return "test_" + id.String()
}

// IntBetween returns an int in [min, max]
func (g *Generator) IntBetween(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: %d > %d", ErrInvalidRange, min, max)
	}
	return min + g.faker.Rand.Intn(max-min+1), nil
}

// Bool returns true or false with equal probability
func (g *Generator) Bool() bool {
	return g.faker.Rand.Intn(2) == 1
}

// InvalidInputs returns hostile and edge-case form values
func (g *Generator) InvalidInputs() InvalidInputs {
	return InvalidInputs{
		InvalidEmail:  "invalid-email-format",
		ShortPassword: "123",
		EmptyString:   "",
		LongString:    g.Words(100),
		SpecialChars:  "!@#$%^&*()_+{}[]|\\:;\"<>?,./`~",
		SQLInjection:  "'; DROP TABLE users; --",
		XSSScript:     `<script>alert("XSS")</script>`,
	}
}

func (g *Generator) alnumN(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alnum[g.faker.Rand.Intn(len(alnum))]
	}
	return string(buf)
}

// Pick returns a random element of items. It panics on an empty slice.
func Pick[T any](g *Generator, items []T) T {
	if len(items) == 0 {
		panic("datagen: Pick from empty slice")
	}
	return items[g.faker.Rand.Intn(len(items))]
}

// Sample returns count distinct elements of items in random order. A count
// larger than len(items) returns every element.
func Sample[T any](g *Generator, items []T, count int) ([]T, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, count)
	}
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	g.faker.Rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count], nil
}
