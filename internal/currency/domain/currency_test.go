package domain

import (
	"sync"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	c, err := ParseCurrency("krw")
	require.NoError(t, err)
	assert.Equal(t, KRW, c)

	c, err = ParseCurrency(" USD ")
	require.NoError(t, err)
	assert.Equal(t, USD, c)

	_, err = ParseCurrency("EUR")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)
}

func TestConverter_Defaults(t *testing.T) {
	c := NewConverter()

	assert.Equal(t, USD, c.Currency())
	assert.Nil(t, c.ExchangeRate())
	assert.Equal(t, "$", c.Symbol())
	assert.Equal(t, 12.5, c.ConvertPrice(12.5))
}

func TestConverter_ConvertPrice(t *testing.T) {
	testCases := []struct {
		name     string
		currency Currency
		rate     ExchangeRate
		input    float64
		expected float64
	}{
		{"USD ignores rate", USD, ExchangeRate{KRW: 1350}, 12.5, 12.5},
		{"KRW without rate falls back to USD", KRW, nil, 12.5, 12.5},
		{"KRW rate missing key", KRW, ExchangeRate{USD: 1}, 7, 7},
		{"KRW exact", KRW, ExchangeRate{KRW: 1350, USD: 1}, 12.5, 16875},
		{"KRW rounds half up", KRW, ExchangeRate{KRW: 1350}, 0.99, 1337},
		{"KRW rounds down", KRW, ExchangeRate{KRW: 1333.3}, 1, 1333},
		{"zero price", KRW, ExchangeRate{KRW: 1350}, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewConverter()
			c.SetCurrency(tc.currency)
			c.SetExchangeRate(tc.rate)

			assert.Equal(t, tc.expected, c.ConvertPrice(tc.input))
		})
	}
}

func TestConverter_FormatPrice(t *testing.T) {
	c := NewConverter()

	assert.Equal(t, "0", c.FormatPrice(0))
	assert.Equal(t, "12.5", c.FormatPrice(12.5))
	assert.Equal(t, "1,350", c.FormatPrice(1350))
	assert.Equal(t, "1,234,567", c.FormatPrice(1234567))
}

func TestConverter_FormatCurrency(t *testing.T) {
	c := NewConverter()
	assert.Equal(t, "$12.5", c.FormatCurrency(12.5))

	c.SetCurrency(KRW)
	assert.Equal(t, "₩12.5", c.FormatCurrency(12.5), "belum ada kurs: tampil sebagai angka USD")

	c.SetExchangeRate(ExchangeRate{KRW: 1350, USD: 1})
	assert.Equal(t, "₩16,875", c.FormatCurrency(12.5))
}

func TestConverter_ExchangeRateIsCopied(t *testing.T) {
	c := NewConverter()
	rate := ExchangeRate{KRW: 1350}
	c.SetExchangeRate(rate)
	rate[KRW] = 1

	got := c.ExchangeRate()
	assert.Equal(t, 1350.0, got[KRW])

	got[KRW] = 2
	assert.Equal(t, 1350.0, c.ExchangeRate()[KRW])
}

func TestConverter_FormatCurrencyDuringCurrencySwitch(t *testing.T) {
	c := NewConverter()
	c.SetExchangeRate(ExchangeRate{KRW: 1350, USD: 1})

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			if i%2 == 0 {
				c.SetCurrency(KRW)
			} else {
				c.SetCurrency(USD)
			}
		}
	}()

	for i := 0; i < 2000; i++ {
		got := c.FormatCurrency(12.5)
		if got != "$12.5" && got != "₩16,875" {
			close(done)
			wg.Wait()
			t.Fatalf("symbol and amount disagree: %q", got)
		}
	}
	close(done)
	wg.Wait()
}

func TestConverterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("USD conversion is the identity", prop.ForAll(
		func(price float64, rate float64) bool {
			c := NewConverter()
			c.SetExchangeRate(ExchangeRate{KRW: rate})
			return c.ConvertPrice(price) == price
		},
		gen.Float64Range(0, 100000),
		gen.Float64Range(1, 2000),
	))

	properties.Property("KRW conversion is an integer", prop.ForAll(
		func(cents int) bool {
			c := NewConverter()
			c.SetCurrency(KRW)
			c.SetExchangeRate(ExchangeRate{KRW: 1350})
			v := c.ConvertPrice(float64(cents) / 100)
			return v == float64(int64(v))
		},
		gen.IntRange(0, 10000000),
	))

	properties.Property("legacy three-step formatting equals FormatCurrency", prop.ForAll(
		func(cents int, useKRW bool, withRate bool) bool {
			c := NewConverter()
			if useKRW {
				c.SetCurrency(KRW)
			}
			if withRate {
				c.SetExchangeRate(ExchangeRate{KRW: 1350, USD: 1})
			}
			price := float64(cents) / 100
			legacy := c.Symbol() + c.FormatPrice(c.ConvertPrice(price))
			return legacy == c.FormatCurrency(price)
		},
		gen.IntRange(0, 10000000),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
