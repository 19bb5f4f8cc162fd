package domain

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Currency string

const (
	USD Currency = "USD"
	KRW Currency = "KRW"
)

// Base currency: semua harga dari API dalam USD.
const BaseCurrency = USD

var ErrUnsupportedCurrency = errors.New("unsupported currency")

func ParseCurrency(s string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(s))); c {
	case USD, KRW:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
}

func (c Currency) Symbol() string {
	if c == KRW {
		return "₩"
	}
	return "$"
}

// ExchangeRate: kode mata uang -> rate terhadap USD, contoh {KRW: 1350, USD: 1}.
type ExchangeRate map[Currency]float64

// Format angka mengikuti locale en-US: pemisah ribuan, maksimal 3 digit desimal.
var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// Converter menyimpan mata uang tampilan dan kurs terakhir untuk satu session.
type Converter struct {
	mu       sync.RWMutex
	currency Currency
	rate     ExchangeRate
}

func NewConverter() *Converter {
	return &Converter{currency: BaseCurrency}
}

func (c *Converter) SetCurrency(cur Currency) {
	c.mu.Lock()
	c.currency = cur
	c.mu.Unlock()
}

func (c *Converter) Currency() Currency {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currency
}

func (c *Converter) SetExchangeRate(rate ExchangeRate) {
	var cp ExchangeRate
	if rate != nil {
		cp = make(ExchangeRate, len(rate))
		for k, v := range rate {
			cp[k] = v
		}
	}
	c.mu.Lock()
	c.rate = cp
	c.mu.Unlock()
}

// ExchangeRate mengembalikan salinan kurs, nil kalau belum pernah berhasil di-fetch.
func (c *Converter) ExchangeRate() ExchangeRate {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.rate == nil {
		return nil
	}
	cp := make(ExchangeRate, len(c.rate))
	for k, v := range c.rate {
		cp[k] = v
	}
	return cp
}

// ConvertPrice mengubah harga USD ke mata uang tampilan, dibulatkan ke integer terdekat.
// Kurs belum ada atau mata uang USD: harga dikembalikan apa adanya.
func (c *Converter) ConvertPrice(usdPrice float64) float64 {
	cur, rate := c.snapshot()
	return convert(cur, rate, usdPrice)
}

// snapshot membaca currency dan kurs dalam satu lock. Map kurs tidak pernah dimutasi,
// hanya diganti utuh oleh SetExchangeRate.
func (c *Converter) snapshot() (Currency, ExchangeRate) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currency, c.rate
}

func convert(cur Currency, rate ExchangeRate, usdPrice float64) float64 {
	if cur == USD || rate == nil {
		return usdPrice
	}
	r, ok := rate[cur]
	if !ok {
		return usdPrice
	}
	return decimal.NewFromFloat(usdPrice).
		Mul(decimal.NewFromFloat(r)).
		Round(0).
		InexactFloat64()
}

// FormatPrice hanya memformat angka, tanpa simbol.
func (c *Converter) FormatPrice(price float64) string {
	return pricePrinter.Sprint(number.Decimal(price, number.MaxFractionDigits(3)))
}

func (c *Converter) Symbol() string {
	return c.Currency().Symbol()
}

// FormatCurrency = Symbol + FormatPrice(ConvertPrice(usdPrice)).
// Semua tampilan harga harus lewat fungsi ini.
func (c *Converter) FormatCurrency(usdPrice float64) string {
	cur, rate := c.snapshot()
	return cur.Symbol() + c.FormatPrice(convert(cur, rate, usdPrice))
}
