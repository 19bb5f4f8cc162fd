package domain

import (
	"time"

	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
)

// FreeDeliveryLabel ditampilkan sebagai ongkir kalau fee 0.
const FreeDeliveryLabel = "FREE"

const (
	MessagePurchaseSucceeded = "Payment completed."
	MessagePurchaseFailed    = "Payment failed. Please try again."
)

// Quote adalah isi panel pembayaran di halaman cart.
type Quote struct {
	Summary
	Grade                gradeDomain.Grade `json:"grade"`
	FormattedItemsTotal  string            `json:"formattedItemsTotal"`
	FormattedDeliveryFee string            `json:"formattedDeliveryFee"`
	FormattedTotalPrice  string            `json:"formattedTotalPrice"`
}

type Formatter interface {
	FormatCurrency(usdPrice float64) string
}

func NewQuote(s Summary, grade gradeDomain.Grade, f Formatter) Quote {
	fee := FreeDeliveryLabel
	if s.DeliveryFee != 0 {
		fee = f.FormatCurrency(s.DeliveryFee)
	}
	return Quote{
		Summary:              s,
		Grade:                grade,
		FormattedItemsTotal:  f.FormatCurrency(s.ItemsTotal),
		FormattedDeliveryFee: fee,
		FormattedTotalPrice:  f.FormatCurrency(s.TotalPrice),
	}
}

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
)

type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

// Redirect hanya data: client pindah ke Path setelah AfterMs.
type Redirect struct {
	Path    string `json:"path"`
	AfterMs int64  `json:"afterMs"`
}

func NewRedirect(path string, after time.Duration) Redirect {
	return Redirect{Path: path, AfterMs: after.Milliseconds()}
}

type Receipt struct {
	Order        PurchaseRequest `json:"order"`
	Quote        Quote           `json:"quote"`
	Notification Notification    `json:"notification"`
	Redirect     Redirect        `json:"redirect"`
}
