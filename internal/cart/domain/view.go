package domain

import (
	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
)

type CartLine struct {
	ProductID      int64   `json:"productId"`
	Name           string  `json:"name"`
	Thumbnail      string  `json:"thumbnail"`
	Stock          int     `json:"stock"`
	Price          float64 `json:"price"`
	FormattedPrice string  `json:"formattedPrice"`
	Quantity       int     `json:"quantity"`
	CanIncrease    bool    `json:"canIncrease"`
	CanDecrease    bool    `json:"canDecrease"`
}

type CartView struct {
	Items         []CartLine `json:"items"`
	TotalQuantity int        `json:"totalQuantity"`
	Empty         bool       `json:"empty"`
}

// MutationResult dikembalikan setelah aksi +/- supaya client bisa update badge cart.
type MutationResult struct {
	ProductID     int64 `json:"productId"`
	Quantity      int   `json:"quantity"`
	TotalQuantity int   `json:"totalQuantity"`
}

// BuildCartView menampilkan produk katalog yang ada di cart, dengan urutan katalog.
// Entry cart tanpa pasangan di katalog tidak ditampilkan.
func BuildCartView(s *Store, products []catalogDomain.Product, f catalogDomain.PriceFormatter) CartView {
	view := CartView{
		Items:         []CartLine{},
		TotalQuantity: s.TotalQuantity(),
	}
	for _, p := range products {
		qty := s.ItemQuantity(p.ID)
		if qty == 0 {
			continue
		}
		view.Items = append(view.Items, CartLine{
			ProductID:      p.ID,
			Name:           p.Name,
			Thumbnail:      p.Thumbnail(),
			Stock:          p.Stock,
			Price:          p.Price,
			FormattedPrice: f.FormatCurrency(p.Price),
			Quantity:       qty,
			CanIncrease:    qty < p.Stock,
			CanDecrease:    qty > 0,
		})
	}
	view.Empty = s.IsEmpty()
	return view
}
