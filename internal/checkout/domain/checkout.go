package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	cartDomain "github.com/ridloal/storefront-bff/internal/cart/domain"
	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
)

type DeliveryMethod string

const (
	DeliveryExpress DeliveryMethod = "EXPRESS"
	DeliveryPremium DeliveryMethod = "PREMIUM"
)

// Batas gratis ongkir PREMIUM dalam USD.
const DefaultFreeShippingThreshold = 30.0

var ErrInvalidDeliveryMethod = errors.New("invalid delivery method")

// ParseDeliveryMethod: string kosong berarti EXPRESS.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	switch m := DeliveryMethod(strings.ToUpper(strings.TrimSpace(s))); m {
	case "":
		return DeliveryExpress, nil
	case DeliveryExpress, DeliveryPremium:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDeliveryMethod, s)
	}
}

type Input struct {
	Items         []cartDomain.CartItem
	Catalog       map[int64]catalogDomain.Product
	Method        DeliveryMethod
	Grade         gradeDomain.Grade
	ShippingRules []gradeDomain.ShippingRule
}

type Summary struct {
	Method        DeliveryMethod `json:"deliveryMethod"`
	TotalQuantity int            `json:"totalQuantity"`
	ItemsTotal    float64        `json:"itemsTotal"`
	DeliveryFee   float64        `json:"deliveryFee"`
	TotalPrice    float64        `json:"totalPrice"`
}

// Calculator menghitung total checkout. Threshold per grade dari API tidak dipakai,
// batas gratis ongkir selalu FreeShippingThreshold.
type Calculator struct {
	FreeShippingThreshold float64
}

func NewCalculator(freeShippingThreshold float64) Calculator {
	return Calculator{FreeShippingThreshold: freeShippingThreshold}
}

func (c Calculator) Calculate(in Input) Summary {
	itemsTotal := decimal.Zero
	qty := 0
	for _, it := range in.Items {
		// TotalQuantity = total isi cart (termasuk entry yang tidak ada di katalog),
		// sedangkan ItemsTotal hanya menjumlah produk yang ada di katalog.
		qty += it.Quantity
		p, ok := in.Catalog[it.ProductID]
		if !ok {
			continue // cart dan katalog tidak sinkron, item dilewati
		}
		itemsTotal = itemsTotal.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	fee := c.deliveryFee(itemsTotal, in)

	return Summary{
		Method:        in.Method,
		TotalQuantity: qty,
		ItemsTotal:    itemsTotal.InexactFloat64(),
		DeliveryFee:   fee.InexactFloat64(),
		TotalPrice:    itemsTotal.Add(fee).InexactFloat64(),
	}
}

func (c Calculator) deliveryFee(itemsTotal decimal.Decimal, in Input) decimal.Decimal {
	if in.Method != DeliveryPremium {
		return decimal.Zero
	}
	if itemsTotal.GreaterThanOrEqual(decimal.NewFromFloat(c.FreeShippingThreshold)) {
		return decimal.Zero
	}
	rule, ok := gradeDomain.FindShippingRule(in.ShippingRules, in.Grade)
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(rule.ShippingFee)
}

type PurchaseItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PurchaseRequest dikirim ke POST /api/product/purchase.
type PurchaseRequest struct {
	DeliveryType DeliveryMethod `json:"deliveryType"`
	TotalPrice   float64        `json:"totalPrice"`
	Items        []PurchaseItem `json:"items"`
}

// NewPurchaseRequest menyusun payload dari summary dan isi cart, item dangling tetap dikirim.
func NewPurchaseRequest(summary Summary, items []cartDomain.CartItem) PurchaseRequest {
	req := PurchaseRequest{
		DeliveryType: summary.Method,
		TotalPrice:   summary.TotalPrice,
		Items:        make([]PurchaseItem, 0, len(items)),
	}
	for _, it := range items {
		req.Items = append(req.Items, PurchaseItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return req
}
